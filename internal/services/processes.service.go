package services

import (
	"context"
	"sort"

	"gpuadvisor/internal/models"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessLister returns the processes visible to the scanner
type ProcessLister func(ctx context.Context) ([]*process.Process, error)

// listProcesses is swapped out in tests
var listProcesses ProcessLister = process.ProcessesWithContext

// GetRunningGames scans running processes and returns those whose executable
// matches a catalog game, busiest first.
// Pipeline: Collect → Match → Sort
func GetRunningGames(ctx context.Context, catalog *Catalog) ([]models.ProcessStatus, error) {
	procs, err := listProcesses(ctx)
	if err != nil {
		return nil, err
	}

	games := make([]models.ProcessStatus, 0)
	seenPIDs := make(map[int32]bool)

	for _, p := range procs {
		if seenPIDs[p.Pid] {
			continue
		}
		seenPIDs[p.Pid] = true

		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		game, ok := catalog.MatchExecutable(name)
		if !ok {
			continue
		}

		games = append(games, collectProcessStatus(ctx, p, name, game))
	}

	sortByCPU(games)
	return games, nil
}

func collectProcessStatus(ctx context.Context, p *process.Process, name, game string) models.ProcessStatus {
	cpuPercent, err := p.CPUPercentWithContext(ctx)
	if err != nil {
		cpuPercent = 0
	}

	memPercent, err := p.MemoryPercentWithContext(ctx)
	if err != nil {
		memPercent = 0
	}

	status, err := p.StatusWithContext(ctx)
	if err != nil || len(status) == 0 {
		status = []string{"unknown"}
	}

	return models.ProcessStatus{
		PID:        p.Pid,
		Name:       name,
		Game:       game,
		CPUPercent: cpuPercent,
		MemPercent: memPercent,
		Status:     mapProcessState(status[0]),
	}
}

func sortByCPU(games []models.ProcessStatus) {
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].CPUPercent > games[j].CPUPercent
	})
}

// mapProcessState converts process state codes to readable strings
func mapProcessState(state string) string {
	if len(state) == 0 {
		return "unknown"
	}
	switch state[0] {
	case 'R':
		return "running"
	case 'S':
		return "sleeping"
	case 'D':
		return "disk_sleep"
	case 'Z':
		return "zombie"
	case 'T':
		return "stopped"
	case 'I':
		return "idle"
	case 'W':
		return "paging"
	case 'X', 'x':
		return "dead"
	default:
		return state
	}
}
