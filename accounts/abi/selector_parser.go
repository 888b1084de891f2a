// Copyright 2024 The go-ethereum Authors
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

package abi

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// isDigit checks if the given byte is a digit (0-9).
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha checks if the given byte is an alphabet character (a-z or A-Z).
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentifierSymbol checks if the given byte is a valid identifier symbol ($ or _).
func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

func isIdentifierChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || isIdentifierSymbol(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func skipSpace(s string) string {
	for len(s) > 0 && isSpace(s[0]) {
		s = s[1:]
	}
	return s
}

// parseToken parses a token from the head of s. Identifiers may also
// contain $ and _.
// parseToken 从 s 的开头解析一个标记，标识符还可以包含 $ 和 _。
func parseToken(s string, isIdent bool) (string, string, error) {
	if len(s) == 0 {
		return "", "", errors.New("empty token")
	}
	firstChar := s[0]
	position := 1
	if !(isAlpha(firstChar) || (isIdent && isIdentifierSymbol(firstChar))) {
		return "", "", errors.Errorf("invalid token start: %c", firstChar)
	}
	for position < len(s) {
		char := s[position]
		if !(isAlpha(char) || isDigit(char) || (isIdent && isIdentifierSymbol(char))) {
			break
		}
		position++
	}
	return s[:position], s[position:], nil
}

// parseIdentifier parses an identifier from the head of s.
func parseIdentifier(s string) (string, string, error) {
	return parseToken(s, true)
}

// parseKeyword consumes word from the head of s if it is present as a whole token.
func parseKeyword(s, word string) (string, bool) {
	if !strings.HasPrefix(s, word) {
		return s, false
	}
	if len(s) > len(word) && isIdentifierChar(s[len(word)]) {
		return s, false
	}
	return skipSpace(s[len(word):]), true
}

// parseParam parses `type [indexed] [name]` and returns the unconsumed input.
func parseParam(s string) (*ParamType, string, error) {
	param, rest, err := parseType(skipSpace(s))
	if err != nil {
		return nil, "", err
	}
	rest = skipSpace(rest)
	if r, ok := parseKeyword(rest, "indexed"); ok {
		param.Indexed = true
		rest = r
	}
	if len(rest) > 0 && (isAlpha(rest[0]) || isIdentifierSymbol(rest[0])) {
		name, r, err := parseIdentifier(rest)
		if err != nil {
			return nil, "", errors.Wrap(ErrInvalidType, err.Error())
		}
		param.Name = name
		rest = skipSpace(r)
	}
	return param, rest, nil
}

// parseType parses an elementary or composite type followed by any number of
// array suffixes. Tuples may be written "(...)" or "tuple(...)".
func parseType(s string) (*ParamType, string, error) {
	if len(s) == 0 {
		return nil, "", errors.Wrap(ErrInvalidType, "empty type")
	}
	if strings.HasPrefix(s, "tuple") && strings.HasPrefix(skipSpace(s[len("tuple"):]), "(") {
		s = skipSpace(s[len("tuple"):])
	}
	var typ *ParamType
	if s[0] == '(' {
		components, rest, err := parseParamList(s)
		if err != nil {
			return nil, "", err
		}
		typ, s = newTupleType(components), rest
	} else {
		token, rest, err := parseToken(s, false)
		if err != nil {
			return nil, "", errors.Wrapf(ErrInvalidType, "failed to parse elementary type: %v", err)
		}
		if typ, err = newElementaryType(token); err != nil {
			return nil, "", err
		}
		s = rest
	}
	return parseArraySuffix(typ, s)
}

// parseParamList parses a parenthesised, comma separated parameter list and
// returns the input following the closing parenthesis.
func parseParamList(s string) ([]*ParamType, string, error) {
	if len(s) == 0 || s[0] != '(' {
		return nil, "", errors.Wrapf(ErrInvalidType, "expected '(' in %q", s)
	}
	rest := skipSpace(s[1:])
	params := []*ParamType{}
	if strings.HasPrefix(rest, ")") {
		return params, rest[1:], nil
	}
	for {
		param, r, err := parseParam(rest)
		if err != nil {
			return nil, "", err
		}
		params = append(params, param)
		if len(r) == 0 {
			return nil, "", errors.Wrapf(ErrInvalidType, "expected ')' in %q", s)
		}
		switch r[0] {
		case ',':
			rest = r[1:]
		case ')':
			return params, r[1:], nil
		default:
			return nil, "", errors.Wrapf(ErrInvalidType, "unexpected %q in %q", r[0], s)
		}
	}
}

// parseArraySuffix wraps typ once per "[]" or "[n]" at the head of s,
// innermost first.
func parseArraySuffix(typ *ParamType, s string) (*ParamType, string, error) {
	for len(s) > 0 && s[0] == '[' {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, "", errors.Wrapf(ErrInvalidType, "failed to parse array: expected ']' in %q", s)
		}
		length := -1
		if inner := s[1:end]; inner != "" {
			n, err := strconv.Atoi(inner)
			if err != nil || n < 0 {
				return nil, "", errors.Wrapf(ErrInvalidType, "invalid array length %q", inner)
			}
			length = n
		}
		typ = newArrayType(typ, length)
		s = s[end+1:]
	}
	return typ, s, nil
}
