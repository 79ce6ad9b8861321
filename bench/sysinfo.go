package bench

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// CaptureSysInfo probes the running machine for the report header. Probe
// failures degrade to empty fields; a report without system metadata is
// still a valid report.
func CaptureSysInfo() SysInfo {
	var info SysInfo

	if hostStat, err := host.Info(); err == nil && hostStat != nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil && vmStat != nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return info
}
