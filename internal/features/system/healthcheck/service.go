package system_healthcheck

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct {
	startedAt time.Time
}

type HealthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds int64   `json:"uptimeSeconds"`
	NumCPU        int     `json:"numCpu"`
	MemoryUsedPct float64 `json:"memoryUsedPct"`
}

func (s *HealthcheckService) GetHealthStatus() *HealthStatus {
	status := &HealthStatus{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		NumCPU:        runtime.NumCPU(),
	}

	if memory, err := mem.VirtualMemory(); err == nil {
		status.MemoryUsedPct = memory.UsedPercent
	}

	return status
}
