// Package sysinfo provides read-only snapshots of CPU, memory and process
// state for the cpu, mem and ps commands.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// DefaultInterval is how long CPU utilization is sampled.
const DefaultInterval = time.Second

// Memory is a virtual memory snapshot.
type Memory struct {
	UsedPercent float64
	Used        uint64
	Total       uint64
}

// Process is a live process.
type Process struct {
	PID  int32
	Name string
}

// Snapshotter answers the three system queries.
type Snapshotter interface {
	CPUPercent(ctx context.Context) (float64, error)
	Memory(ctx context.Context) (Memory, error)
	Processes(ctx context.Context) ([]Process, error)
}

// Host reads the local machine via gopsutil.
type Host struct {
	Interval time.Duration
}

// NewHost returns a Host sampling CPU over interval.
func NewHost(interval time.Duration) *Host {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Host{Interval: interval}
}

// CPUPercent returns overall CPU utilization sampled over h.Interval.
func (h *Host) CPUPercent(ctx context.Context) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, h.Interval, false)
	if err != nil {
		return 0, fmt.Errorf("failed to sample cpu: %w", err)
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("failed to sample cpu: no data")
	}
	return percents[0], nil
}

// Memory returns virtual memory utilization.
func (h *Host) Memory(ctx context.Context) (Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Memory{}, fmt.Errorf("failed to read memory: %w", err)
	}
	return Memory{UsedPercent: vm.UsedPercent, Used: vm.Used, Total: vm.Total}, nil
}

// Processes lists live processes. Processes that exit while being listed,
// or whose name cannot be read, are reported with an empty name.
func (h *Host) Processes(ctx context.Context) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		name, _ := p.NameWithContext(ctx)
		out = append(out, Process{PID: p.Pid, Name: name})
	}
	return out, nil
}
