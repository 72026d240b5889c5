package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLockTimeout is how long a change-set lock survives without activity.
const DefaultLockTimeout = 30 * time.Minute

// ProposedChangeSet is the reviewable batch of proposals extracted from one
// meeting. LockVersion increases on every lock mutation.
type ProposedChangeSet struct {
	ID          uuid.UUID
	MeetingID   uuid.UUID
	ProjectID   uuid.UUID
	Items       ProposedItems
	LockedBy    *uuid.UUID
	LockedAt    *time.Time
	LockVersion int64

	// PublishingAt is set while the holder's publish is applying items.
	PublishingAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLockExpired reports whether the lock (if any) has outlived timeout at now.
// An unlocked change-set is reported as expired.
func (c *ProposedChangeSet) IsLockExpired(now time.Time, timeout time.Duration) bool {
	if c.LockedBy == nil || c.LockedAt == nil {
		return true
	}
	return now.Sub(*c.LockedAt) > timeout
}

// ActiveHolder returns the holder of a non-expired lock.
func (c *ProposedChangeSet) ActiveHolder(now time.Time, timeout time.Duration) (uuid.UUID, bool) {
	if c.IsLockExpired(now, timeout) {
		return uuid.Nil, false
	}
	return *c.LockedBy, true
}

// IsPublishing reports whether a publish claimed the change-set and has not
// finished or gone idle past timeout.
func (c *ProposedChangeSet) IsPublishing(now time.Time, timeout time.Duration) bool {
	return c.PublishingAt != nil && now.Sub(*c.PublishingAt) <= timeout
}

// IsHeldBy reports whether actor holds a non-expired lock.
func (c *ProposedChangeSet) IsHeldBy(actor uuid.UUID, now time.Time, timeout time.Duration) bool {
	holder, ok := c.ActiveHolder(now, timeout)
	return ok && holder == actor
}

// LockStatus is the lock view shown to reviewers.
type LockStatus struct {
	Locked     bool       `json:"locked"`
	HolderID   *uuid.UUID `json:"holderId,omitempty"`
	LockedAt   *time.Time `json:"lockedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	Expired    bool       `json:"expired"`
	Publishing bool       `json:"publishing"`
	Version    int64      `json:"version"`
}

// LockStatusAt builds the lock view of the change-set at now.
func (c *ProposedChangeSet) LockStatusAt(now time.Time, timeout time.Duration) LockStatus {
	st := LockStatus{Version: c.LockVersion, Publishing: c.IsPublishing(now, timeout)}
	if c.LockedBy == nil || c.LockedAt == nil {
		return st
	}
	expires := c.LockedAt.Add(timeout)
	st.HolderID = c.LockedBy
	st.LockedAt = c.LockedAt
	st.ExpiresAt = &expires
	st.Expired = c.IsLockExpired(now, timeout)
	st.Locked = !st.Expired
	return st
}

// BlockedItem is an accepted proposal whose identity needs a reviewer.
type BlockedItem struct {
	TempID     string           `json:"tempId"`
	EntityType EntityType       `json:"entityType"`
	Name       string           `json:"name"`
	Status     ResolutionStatus `json:"status"`
}

// BlockingItems lists accepted proposals whose person reference is
// ambiguous or a conference room.
func (p ProposedItems) BlockingItems() []BlockedItem {
	var out []BlockedItem
	for _, item := range p.Accepted() {
		person := item.Person()
		if person == nil || !person.Status.BlocksPublish() {
			continue
		}
		out = append(out, BlockedItem{
			TempID:     item.Base().TempID,
			EntityType: item.EntityType(),
			Name:       person.Name,
			Status:     person.Status,
		})
	}
	return out
}
