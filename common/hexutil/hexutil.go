// Copyright 2016 by the Authors
// This file is part of the go-core library.
//
// The go-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-core library. If not, see <http://www.gnu.org/licenses/>.

// Package hexutil implements hex encoding with a 0x prefix, the format
// the cvm CLI uses for bytecode and calldata on its --code/--calldata
// flags and the format disassemble/run print their output in.
package hexutil

import (
	"encoding/hex"
	"errors"
	"strconv"
)

// Errors returned by Decode.
var (
	ErrEmptyString  = errors.New("empty hex string")
	ErrMissingPrefix = errors.New("hex string without 0x prefix")
	ErrOddLength    = errors.New("hex string of odd length")
	ErrSyntax       = errors.New("invalid hex string")
)

// Encode encodes b as a 0x-prefixed lowercase hex string. Encoding an
// empty slice yields "0x".
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// Decode decodes a 0x-prefixed hex string into a byte slice.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyString
	}
	if !has0xPrefix(input) {
		return nil, ErrMissingPrefix
	}
	b, err := hex.DecodeString(input[2:])
	if err != nil {
		err = mapError(err)
	}
	return b, err
}

// MustDecode decodes a 0x-prefixed hex string, panicking on error.
// Intended for fixed test-vector strings only.
func MustDecode(input string) []byte {
	dec, err := Decode(input)
	if err != nil {
		panic(err)
	}
	return dec
}

// DecodeUsed0x decodes input the same as Decode, but also tolerates a
// bare hex string with no prefix at all -- the CLI flags accept either
// form, since users routinely omit the 0x when pasting bytecode.
func DecodeUsed0x(input string) ([]byte, error) {
	if input == "" {
		return nil, nil
	}
	if !has0xPrefix(input) {
		input = "0x" + input
	}
	return Decode(input)
}

func has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

func mapError(err error) error {
	if _, ok := err.(hex.InvalidByteError); ok {
		return ErrSyntax
	}
	if errors.Is(err, hex.ErrLength) {
		return ErrOddLength
	}
	return err
}

// EncodeUint64 encodes i as a 0x-prefixed, minimal-digit hex string,
// used to render the instruction pointer in verbose disassembly.
func EncodeUint64(i uint64) string {
	return "0x" + strconv.FormatUint(i, 16)
}
