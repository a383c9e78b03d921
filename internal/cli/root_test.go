// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAlgorithmIDAccepted(t *testing.T) {
	for i := 1; i <= 6; i++ {
		n, err := parseAlgorithmID(string(rune('0' + i)))
		assert.NoError(t, err)
		assert.Equal(t, i, n)
	}
}

func TestParseAlgorithmIDRejectsOutOfRange(t *testing.T) {
	for _, s := range []string{"0", "7", "-1", "10"} {
		_, err := parseAlgorithmID(s)
		assert.Error(t, err)
	}
}

func TestParseAlgorithmIDRejectsNonNumeric(t *testing.T) {
	_, err := parseAlgorithmID("improved")
	assert.Error(t, err)
}

func TestRootCmdRejectsWrongArgCount(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"2", "only-one-path"})
	err := root.Execute()
	assert.Error(t, err)
}

func TestRootCmdRejectsBadAlgorithmID(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"9", "in.asc", "out.asc"})
	err := root.Execute()
	assert.Error(t, err)
}
