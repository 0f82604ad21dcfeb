package buildinfo

import (
	"fmt"
	"runtime"
	"testing"

	. "github.com/dc2calc/dc2/pkg/prog/progtest"
	"github.com/dc2calc/dc2/pkg/testutil"
)

func TestProgram(t *testing.T) {
	Test(t, Program,
		ThatDc2("--version").WritesStdout("dc2 0.2.0 Copyright (C) 2025 Davide Mastromatteo\n"),
		ThatDc2("-V").WritesStdout(Banner()+"\n"),
		ThatDc2("--buildinfo").WritesStdout(
			fmt.Sprintf(
				"Version: %v\nGo version: %v\nReproducible build: %v\n",
				Version, runtime.Version(), Reproducible)),

		ThatDc2().ExitsWith(2).WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestProgram_Reproducible(t *testing.T) {
	testutil.Set(t, &Reproducible, "true")
	Test(t, Program,
		ThatDc2("--buildinfo").WritesStdoutContaining("Reproducible build: true\n"),
	)
}
