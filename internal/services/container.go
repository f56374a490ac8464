// Package services holds the provider's service-offering collection and the
// CRUD actions against it. Image-bearing creates and updates go out as
// multipart; updates spoof PUT over POST the way the backend expects.
package services

import (
	"context"
	"sync"

	"github.com/sithum-sy/hireme-client/internal/api"
	"github.com/sithum-sy/hireme-client/internal/common"
	"github.com/sithum-sy/hireme-client/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the snapshot the UI reads.
type State struct {
	Services  []shared.ServiceOffering
	Loading   bool
	Saving    bool
	LastError string
}

// Container owns the service-offering collection for one session.
type Container struct {
	mu     sync.Mutex
	state  State
	client *api.Client
	logger *zap.Logger
}

// NewContainer creates a new services container.
func NewContainer(client *api.Client, logger *zap.Logger) *Container {
	return &Container{
		client: client,
		logger: logger.Named("ServicesContainer"),
	}
}

// Snapshot returns a copy of the current state.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.state
	out.Services = append([]shared.ServiceOffering(nil), c.state.Services...)
	return out
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

// List loads the provider's services.
func (c *Container) List(ctx context.Context) common.Result {
	c.setLoading(true)
	defer c.setLoading(false)

	var list []shared.ServiceOffering
	if err := c.client.Get(ctx, "/provider/services", &list); err != nil {
		c.logger.Warn("Failed to list services", zap.Error(err))
		c.apply(ctx, func(s *State) { s.LastError = common.ErrorMessage(err, "Failed to load services") })
		return common.FailFromError(err, "Failed to load services")
	}

	c.apply(ctx, func(s *State) {
		s.Services = list
		s.LastError = ""
	})
	return common.OK(list)
}

// Create submits a new service, with any images as multipart parts.
func (c *Container) Create(ctx context.Context, fields map[string]string, images []api.FilePart) common.Result {
	c.setSaving(true)
	defer c.setSaving(false)

	var created shared.ServiceOffering
	var err error
	if len(images) > 0 {
		err = c.client.PostMultipart(ctx, "/provider/services", fields, images, "", &created)
	} else {
		err = c.client.Post(ctx, "/provider/services", fields, &created)
	}
	if err != nil {
		c.logger.Warn("Failed to create service", zap.Error(err))
		return common.FailFromError(err, "Failed to create service")
	}

	c.apply(ctx, func(s *State) {
		s.Services = append(s.Services, created)
	})
	return common.OK(&created)
}

// Update submits changed values for one service. Image-bearing updates are
// multipart POSTs spoofing PUT.
func (c *Container) Update(ctx context.Context, id uuid.UUID, fields map[string]string, images []api.FilePart) common.Result {
	c.setSaving(true)
	defer c.setSaving(false)

	path := "/provider/services/" + id.String()
	var updated shared.ServiceOffering
	var err error
	if len(images) > 0 {
		err = c.client.PostMultipart(ctx, path, fields, images, "PUT", &updated)
	} else {
		err = c.client.Put(ctx, path, fields, &updated)
	}
	if err != nil {
		c.logger.Warn("Failed to update service", zap.String("serviceID", id.String()), zap.Error(err))
		return common.FailFromError(err, "Failed to update service")
	}

	c.apply(ctx, func(s *State) {
		for i := range s.Services {
			if s.Services[i].ID == id {
				s.Services[i] = updated
				return
			}
		}
	})
	return common.OK(&updated)
}

// Delete removes a service and drops it from the cached collection.
func (c *Container) Delete(ctx context.Context, id uuid.UUID) common.Result {
	c.setSaving(true)
	defer c.setSaving(false)

	if err := c.client.Delete(ctx, "/provider/services/"+id.String(), nil); err != nil {
		c.logger.Warn("Failed to delete service", zap.String("serviceID", id.String()), zap.Error(err))
		return common.FailFromError(err, "Failed to delete service")
	}

	c.apply(ctx, func(s *State) {
		kept := s.Services[:0]
		for _, svc := range s.Services {
			if svc.ID != id {
				kept = append(kept, svc)
			}
		}
		s.Services = kept
	})
	return common.OKMessage("Service deleted")
}

// Toggle activates or deactivates a service listing.
func (c *Container) Toggle(ctx context.Context, id uuid.UUID, active bool) common.Result {
	c.setSaving(true)
	defer c.setSaving(false)

	body := map[string]bool{"is_active": active}
	var updated shared.ServiceOffering
	if err := c.client.Patch(ctx, "/provider/services/"+id.String()+"/toggle", body, &updated); err != nil {
		c.logger.Warn("Failed to toggle service", zap.String("serviceID", id.String()), zap.Error(err))
		return common.FailFromError(err, "Failed to update service status")
	}

	c.apply(ctx, func(s *State) {
		for i := range s.Services {
			if s.Services[i].ID == id {
				s.Services[i] = updated
				return
			}
		}
	})
	return common.OK(&updated)
}
