// Package provider holds the provider-side business state container:
// business details, availability, and the earnings/rating statistics shown on
// the dashboard.
package provider

import (
	"context"
	"sync"

	"github.com/sithum-sy/hireme-client/internal/api"
	"github.com/sithum-sy/hireme-client/internal/common"
	"github.com/sithum-sy/hireme-client/internal/shared"

	"go.uber.org/zap"
)

// State is the snapshot the UI reads.
type State struct {
	Profile    *shared.ProviderProfile
	Statistics *shared.ProviderStatistics
	Loading    bool
	Saving     bool
	LastError  string
}

// Container owns provider business state for one session.
type Container struct {
	mu     sync.Mutex
	state  State
	client *api.Client
	logger *zap.Logger
}

// NewContainer creates a new provider container.
func NewContainer(client *api.Client, logger *zap.Logger) *Container {
	return &Container{
		client: client,
		logger: logger.Named("ProviderContainer"),
	}
}

// Snapshot returns a copy of the current state.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Container) setLoading(v bool) {
	c.mu.Lock()
	c.state.Loading = v
	c.mu.Unlock()
}

func (c *Container) setSaving(v bool) {
	c.mu.Lock()
	c.state.Saving = v
	c.mu.Unlock()
}

func (c *Container) apply(ctx context.Context, mutate func(*State)) bool {
	if ctx.Err() != nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	mutate(&c.state)
	return true
}

// Fetch loads the provider profile.
func (c *Container) Fetch(ctx context.Context) common.Result {
	c.setLoading(true)
	defer c.setLoading(false)

	var p shared.ProviderProfile
	if err := c.client.Get(ctx, "/provider/profile", &p); err != nil {
		c.logger.Warn("Failed to fetch provider profile", zap.Error(err))
		c.apply(ctx, func(s *State) { s.LastError = common.ErrorMessage(err, "Failed to load business profile") })
		return common.FailFromError(err, "Failed to load business profile")
	}

	c.apply(ctx, func(s *State) {
		s.Profile = &p
		s.LastError = ""
	})
	return common.OK(&p)
}

// UpdateBusiness submits the business-info form values.
func (c *Container) UpdateBusiness(ctx context.Context, values map[string]interface{}) common.Result {
	c.setSaving(true)
	defer c.setSaving(false)

	var p shared.ProviderProfile
	if err := c.client.Put(ctx, "/provider/profile", values, &p); err != nil {
		c.logger.Warn("Failed to update business profile", zap.Error(err))
		return common.FailFromError(err, "Failed to update business profile")
	}

	c.apply(ctx, func(s *State) {
		s.Profile = &p
		s.LastError = ""
	})
	return common.OKMessage("Business profile updated successfully")
}

// ToggleAvailability flips the provider's availability flag. The cached flag
// is updated optimistically and rolled back if the call fails.
func (c *Container) ToggleAvailability(ctx context.Context, available bool) common.Result {
	c.setSaving(true)
	defer c.setSaving(false)

	var previous *bool
	c.apply(ctx, func(s *State) {
		if s.Profile != nil {
			prev := s.Profile.IsAvailable
			previous = &prev
			s.Profile.IsAvailable = available
		}
	})

	body := map[string]bool{"is_available": available}
	if err := c.client.Patch(ctx, "/provider/availability", body, nil); err != nil {
		c.logger.Warn("Failed to toggle availability", zap.Bool("available", available), zap.Error(err))
		c.apply(ctx, func(s *State) {
			if s.Profile != nil && previous != nil {
				s.Profile.IsAvailable = *previous
			}
		})
		return common.FailFromError(err, "Failed to update availability")
	}

	return common.OKMessage("Availability updated")
}

// Statistics loads the earnings and rating aggregates.
func (c *Container) Statistics(ctx context.Context) common.Result {
	c.setLoading(true)
	defer c.setLoading(false)

	var stats shared.ProviderStatistics
	if err := c.client.Get(ctx, "/provider/statistics", &stats); err != nil {
		c.logger.Warn("Failed to fetch provider statistics", zap.Error(err))
		return common.FailFromError(err, "Failed to load statistics")
	}

	c.apply(ctx, func(s *State) { s.Statistics = &stats })
	return common.OK(&stats)
}
