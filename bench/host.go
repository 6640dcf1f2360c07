package bench

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Host describes the machine a report was measured on; timings are only
// comparable between reports with matching hosts.
type Host struct {
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	CPU         string `json:"cpu"`
	Cores       int    `json:"cores"`
	MemoryBytes uint64 `json:"memory_bytes"`
	GoVersion   string `json:"go_version"`
}

// DetectHost collects CPU model, logical core count and total memory.
func DetectHost() (Host, error) {
	h := Host{OS: runtime.GOOS, Arch: runtime.GOARCH, GoVersion: runtime.Version()}

	infos, err := cpu.Info()
	if err != nil {
		return Host{}, fmt.Errorf("cpu info: %w", err)
	}
	if len(infos) > 0 {
		h.CPU = infos[0].ModelName
	}
	if h.Cores, err = cpu.Counts(true); err != nil {
		return Host{}, fmt.Errorf("cpu count: %w", err)
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return Host{}, fmt.Errorf("memory: %w", err)
	}
	h.MemoryBytes = vm.Total

	return h, nil
}

// String is the one-line summary printed above the tables.
func (h Host) String() string {
	return fmt.Sprintf("%s/%s, %s, %d cores, %.1f GiB, %s",
		h.OS, h.Arch, h.CPU, h.Cores, float64(h.MemoryBytes)/(1<<30), h.GoVersion)
}
