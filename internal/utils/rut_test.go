package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitoVerificador(t *testing.T) {
	cases := []struct {
		run  int
		want string
	}{
		{12345678, "5"},
		{11111111, "1"},
		{0, "0"},
		{7654321, "6"},
		{1, "9"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DigitoVerificador(tc.run), "run %d", tc.run)
	}
}

func TestDigitoVerificadorAlwaysInAlphabet(t *testing.T) {
	valid := map[string]bool{
		"0": true, "1": true, "2": true, "3": true, "4": true,
		"5": true, "6": true, "7": true, "8": true, "9": true, "K": true,
	}
	for run := 0; run <= 100000; run++ {
		dv := DigitoVerificador(run)
		if !valid[dv] {
			t.Fatalf("run %d produced %q, outside 0-9/K", run, dv)
		}
	}
}
