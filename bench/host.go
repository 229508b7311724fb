// SPDX-License-Identifier: MIT

package bench

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Host describes the machine a report was produced on.
type Host struct {
	OS       string   `yaml:"os"`
	Arch     string   `yaml:"arch"`
	CPUs     int      `yaml:"cpus"`
	MaxProcs int      `yaml:"gomaxprocs"`
	Features []string `yaml:"features,omitempty"`
}

// DetectHost inspects the running process and CPU.
func DetectHost() Host {
	return Host{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		CPUs:     runtime.NumCPU(),
		MaxProcs: runtime.GOMAXPROCS(0),
		Features: cpuFeatures(runtime.GOARCH),
	}
}

// cpuFeatures lists the vector and atomics extensions relevant to a dense
// integer kernel, as reported by golang.org/x/sys/cpu.
func cpuFeatures(arch string) []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	switch arch {
	case "amd64", "386":
		add(cpu.X86.HasSSE42, "sse4.2")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasATOMICS, "atomics")
		add(cpu.ARM64.HasSVE, "sve")
		add(cpu.ARM64.HasSVE2, "sve2")
	}

	return out
}
