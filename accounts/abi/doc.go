// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package abi implements the contract ABI used by Zenon embedded contracts.
//
// Values are laid out in 32 byte words. Static values are stored inline,
// dynamic values (bytes, strings, dynamic arrays and tuples containing them)
// are appended to the tail of the enclosing tuple and referenced by offset.
// Besides the usual elementary types the codec knows the Zenon primitives
// address (20 bytes), tokenStandard (10 bytes) and hash (32 bytes).
//
// AbiCoder encodes and decodes parameter lists given as type strings.
// Interface resolves the functions, events and errors of a contract ABI and
// frames call data, results, revert data and event logs around the coder.
// abi 包实现了 Zenon 内置合约使用的合约 ABI。
//
// 值按 32 字节的字进行布局。静态值内联存储，动态值（bytes、string、动态数组以及包含它们的元组）
// 追加在外层元组的尾部，并通过偏移量引用。除常见的基本类型外，编码器还支持 Zenon 原语
// address（20 字节）、tokenStandard（10 字节）和 hash（32 字节）。
package abi

//1. 编码布局
//头部/尾部 ：
//每个元组先写出所有静态成员和动态成员的偏移量（头部），再写出动态成员的内容（尾部）。
//偏移量相对于元组的起始位置。
//补码 ：
//有符号整数按二进制补码编码，并符号扩展到整个字。
//2. 片段解析
//Interface 可以按名称、规范签名或标识符（函数/错误为 4 字节选择器，事件为 32 字节主题）查找片段。
//仅使用名称查找重载函数时会返回 ErrAmbiguousFragment。
