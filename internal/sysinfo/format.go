package sysinfo

import (
	"fmt"
	"strings"
)

const mebibyte = 1024 * 1024

// FormatCPU renders a CPU percentage the way the cpu command prints it.
func FormatCPU(percent float64) string {
	return fmt.Sprintf("CPU Usage: %.1f%%", percent)
}

// FormatMemory renders a memory snapshot the way the mem command prints it.
func FormatMemory(m Memory) string {
	return fmt.Sprintf("Memory Usage: %.1f%% (%dMB used / %dMB total)",
		m.UsedPercent, m.Used/mebibyte, m.Total/mebibyte)
}

// FormatProcesses renders a header line followed by one "pid\tname" line
// per process.
func FormatProcesses(procs []Process) string {
	var sb strings.Builder
	sb.WriteString("PID\tName")
	for _, p := range procs {
		fmt.Fprintf(&sb, "\n%d\t%s", p.PID, p.Name)
	}
	return sb.String()
}
