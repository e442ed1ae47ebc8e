package abm

import (
	"fmt"
	"io"
)

// Summary statistics over the recorded history of a simulation.
type Summary struct {
	Frames           int
	Healthy          int
	Infected         int
	Dead             int
	PeakInfected     int
	PeakFrame        int
	TotalPromotions  int
	TotalDeaths      int
	TotalMutations   int
	MaxInfectionRate int
	// Frame at which the last infected agent died, -1 if it has not happened
	EndedAt int
}

// Reduces the census history to a Summary.
func (s *Simulation) Summarize() Summary {
	summary := Summary{
		Frames:   s.frame,
		Healthy:  s.population.NumHealthy(),
		Infected: s.population.NumInfected(),
		Dead:     s.population.NumDead(),
		EndedAt:  s.endedAt,
	}
	infected := make([]int, len(s.history))
	rates := make([]int, len(s.history))
	for i, census := range s.history {
		infected[i] = census.Infected
		rates[i] = census.MaxInfectionRate
		summary.TotalPromotions += census.Promotions
		summary.TotalDeaths += census.Deaths
		summary.TotalMutations += census.Mutations
	}
	if peak, i := Peak(infected); i >= 0 {
		summary.PeakInfected = peak
		summary.PeakFrame = s.history[i].Frame
	}
	summary.MaxInfectionRate, _ = Peak(rates)
	return summary
}

// Reports statistics on the outcome of a simulation
func (s *Simulation) Analysis(w io.Writer) {
	p := s.params
	fmt.Fprintf(w, "Parameters: agents=%d arena=%dx%d radius=%d fps=%d mutate=%d\n",
		p.NumAgents, p.Width, p.Height, p.Radius, p.FPS, p.Mutate)
	if s.frame == 0 {
		fmt.Fprintln(w, "No frames simulated")
		return
	}
	summary := s.Summarize()
	fmt.Fprintf(w, "Frames simulated: %d\n", summary.Frames)
	fmt.Fprintf(w, "Healthy, infected, dead: %d %d %d\n",
		summary.Healthy, summary.Infected, summary.Dead)
	fmt.Fprintf(w, "Peak infected: %d at frame %d\n", summary.PeakInfected, summary.PeakFrame)
	fmt.Fprintf(w, "Infections, deaths, mutations: %d %d %d\n",
		summary.TotalPromotions, summary.TotalDeaths, summary.TotalMutations)
	fmt.Fprintf(w, "Max infection rate: %d\n", summary.MaxInfectionRate)
	if summary.EndedAt >= 0 {
		fmt.Fprintf(w, "Epidemic ended at frame %d\n", summary.EndedAt)
	} else {
		fmt.Fprintln(w, "Epidemic still running")
	}
}
