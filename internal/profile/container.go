// Package profile holds the session-scoped profile state container: the
// cached user record, the nested provider profile, and the role permission
// config, together with the actions that mutate them through the backend.
// Containers are plain injected dependencies, not ambient singletons; each
// entity is owned by exactly one container and mutated only through its
// actions.
package profile

import (
	"context"
	"sync"

	"github.com/sithum-sy/hireme-client/internal/api"
	"github.com/sithum-sy/hireme-client/internal/common"
	"github.com/sithum-sy/hireme-client/internal/shared"

	"go.uber.org/zap"
)

// State is the snapshot the UI reads on every render.
type State struct {
	User            *shared.User
	ProviderProfile *shared.ProviderProfile
	Config          *shared.PermissionConfig
	Loading         bool
	Saving          bool
	LastError       string
}

// Container owns the profile state for one session.
type Container struct {
	mu     sync.Mutex
	state  State
	client *api.Client
	logger *zap.Logger
}

// NewContainer creates a new profile container.
func NewContainer(client *api.Client, logger *zap.Logger) *Container {
	return &Container{
		client: client,
		logger: logger.Named("ProfileContainer"),
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

// apply mutates cached state unless the action's context has already been
// cancelled, so a stale in-flight response cannot write into a torn-down
// session.
func (c *Container) apply(ctx context.Context, mutate func(*State)) bool {
	if ctx.Err() != nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	mutate(&c.state)
	return true
}

type profilePayload struct {
	User            *shared.User            `json:"user"`
	ProviderProfile *shared.ProviderProfile `json:"provider_profile,omitempty"`
}

// Fetch loads the current user (and provider profile, when present) from the
// backend and caches it.
func (c *Container) Fetch(ctx context.Context) common.Result {
	c.setLoading(true)
	defer c.setLoading(false)

	var payload profilePayload
	if err := c.client.Get(ctx, "/profile", &payload); err != nil {
		c.logger.Warn("Failed to fetch profile", zap.Error(err))
		c.apply(ctx, func(s *State) { s.LastError = common.ErrorMessage(err, "Failed to load profile") })
		return common.FailFromError(err, "Failed to load profile")
	}

	c.apply(ctx, func(s *State) {
		s.User = payload.User
		s.ProviderProfile = payload.ProviderProfile
		s.LastError = ""
	})
	return common.OK(payload.User)
}

// FetchPermissions loads the role-based field permission config. Fetched once
// per session; the form layer treats it as read-only.
func (c *Container) FetchPermissions(ctx context.Context) common.Result {
	c.setLoading(true)
	defer c.setLoading(false)

	var cfg shared.PermissionConfig
	if err := c.client.Get(ctx, "/profile/config", &cfg); err != nil {
		c.logger.Warn("Failed to fetch permission config", zap.Error(err))
		return common.FailFromError(err, "Failed to load profile configuration")
	}

	c.apply(ctx, func(s *State) { s.Config = &cfg })
	return common.OK(&cfg)
}

// UpdateSection submits one profile section's values and refreshes the cached
// user with whatever the backend echoes back.
func (c *Container) UpdateSection(ctx context.Context, section string, values map[string]interface{}) common.Result {
	c.setSaving(true)
	defer c.setSaving(false)

	var payload profilePayload
	if err := c.client.Put(ctx, "/profile/"+section, values, &payload); err != nil {
		c.logger.Warn("Failed to update profile section",
			zap.String("section", section), zap.Error(err))
		return common.FailFromError(err, "Failed to update profile")
	}

	c.apply(ctx, func(s *State) {
		if payload.User != nil {
			s.User = payload.User
		}
		if payload.ProviderProfile != nil {
			s.ProviderProfile = payload.ProviderProfile
		}
		s.LastError = ""
	})
	return common.OKMessage("Profile updated successfully")
}

// UploadAvatar submits a new profile picture as multipart with PUT semantics
// (the backend only accepts multipart over POST, so the method is spoofed).
func (c *Container) UploadAvatar(ctx context.Context, file api.FilePart) common.Result {
	c.setSaving(true)
	defer c.setSaving(false)

	var payload profilePayload
	err := c.client.PostMultipart(ctx, "/profile/avatar", nil, []api.FilePart{file}, "PUT", &payload)
	if err != nil {
		c.logger.Warn("Failed to upload avatar", zap.Error(err))
		return common.FailFromError(err, "Failed to upload profile picture")
	}

	c.apply(ctx, func(s *State) {
		if payload.User != nil {
			s.User = payload.User
		}
	})
	return common.OKMessage("Profile picture updated")
}

// ChangePassword submits a password change. The security form has already run
// the password policy; this only carries the request and normalizes the outcome.
func (c *Container) ChangePassword(ctx context.Context, current, newPassword, confirmation string) common.Result {
	c.setSaving(true)
	defer c.setSaving(false)

	body := map[string]string{
		"current_password":          current,
		"new_password":              newPassword,
		"new_password_confirmation": confirmation,
	}
	if err := c.client.Put(ctx, "/profile/password", body, nil); err != nil {
		c.logger.Warn("Failed to change password", zap.Error(err))
		return common.FailFromError(err, "Failed to change password")
	}
	return common.OKMessage("Password changed successfully")
}

// LoadSession fans out the independent initial fetches. Each fetch applies its
// own effects as it lands; one failure neither blocks nor rolls back the
// others. The first failure's message is reported.
func (c *Container) LoadSession(ctx context.Context, extra ...func(context.Context) common.Result) common.Result {
	fetches := append([]func(context.Context) common.Result{
		c.Fetch,
		c.FetchPermissions,
	}, extra...)

	results := make([]common.Result, len(fetches))
	var wg sync.WaitGroup
	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, fetch func(context.Context) common.Result) {
			defer wg.Done()
			results[i] = fetch(ctx)
		}(i, fetch)
	}
	wg.Wait()

	for _, res := range results {
		if !res.Success {
			return res
		}
	}
	return common.OKMessage("Session loaded")
}
