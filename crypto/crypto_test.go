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

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"hello", "3338be694f50c5f338814986cdf0686453a888b84f424d792af4b9202398f392"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hex.EncodeToString(Digest([]byte(tt.input))))
		assert.Equal(t, tt.want, DigestHash([]byte(tt.input)).String())
		assert.Equal(t, tt.want, Id(tt.input).String())
	}
}

func TestDigestMultipleInputs(t *testing.T) {
	assert.Equal(t, Digest([]byte("abc")), Digest([]byte("a"), []byte("bc")))
}

func TestDigestDataReusesState(t *testing.T) {
	d := NewDigestState()
	first := DigestData(d, []byte("abc"))
	second := DigestData(d, []byte("abc"))
	assert.Equal(t, first, second)
	assert.Equal(t, Id("abc"), first)
}
