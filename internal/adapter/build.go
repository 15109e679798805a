package adapter

import (
	"github.com/atlgigs/gig-scraper/internal/config"
	"github.com/atlgigs/gig-scraper/internal/tm"
)

// Build assembles the venue registry for a run. Venues with reliable
// Ticketmaster Discovery coverage swap to the API-backed adapter when a
// key is configured; their HTML adapters remain the fallback.
func Build(cfg *config.Config) *Registry {
	client := NewClient(cfg.RequestDelay)

	reg := NewRegistry()
	reg.Register(NewEarl(client))
	reg.Register(NewTerminalWest(client))
	reg.Register(NewTheEastern(client))
	reg.Register(NewVarietyPlayhouse(client))
	reg.Register(NewTabernacle(client, cfg.LiveNationAPIKey))
	reg.Register(NewCocaColaRoxy(client, cfg.LiveNationAPIKey))
	reg.Register(NewFox(client))
	reg.Register(NewStateFarm(client))
	reg.Register(NewMasquerade(client))
	reg.Register(NewMercedes(client))
	reg.Register(NewCenterStage(client))

	if cfg.UseTMAPI && cfg.TMAPIKey != "" {
		tmClient := tm.NewClient(cfg.TMAPIKey)
		reg.Register(NewTMStateFarm(tmClient, client))
		reg.Register(NewTMMasquerade(tmClient, client))
		reg.Register(NewTMCenterStage(tmClient, client))
	}

	return reg
}
