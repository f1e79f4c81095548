// Copyright 2014 by the Authors
// This file is part of go-core.
//
// go-core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-core. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/core-coin/cvm/common/hexutil"
)

// readHexSource reads hex-encoded bytes from, in order of precedence,
// an inline flag value, a file (including "-" for stdin), or neither
// (empty). Matches the CodeFlag/CodeFileFlag and InputFlag/
// InputFileFlag pairing the teacher's cvm command uses.
func readHexSource(inline, file string) ([]byte, error) {
	switch {
	case inline != "":
		return hexutil.DecodeUsed0x(strings.TrimSpace(inline))
	case file == "-":
		data, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return hexutil.DecodeUsed0x(strings.TrimSpace(string(data)))
	case file != "":
		data, err := ioutil.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		return hexutil.DecodeUsed0x(strings.TrimSpace(string(data)))
	default:
		return nil, nil
	}
}
