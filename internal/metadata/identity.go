package metadata

import (
	"errors"
	"os/user"
	"strconv"

	"github.com/harrison/lsv/internal/models"
)

var errEmptyName = errors.New("empty name")

// IdentityCache memoizes uid and gid to name lookups for one invocation.
// Failed lookups are cached as models.UnknownIdentity too, so a missing
// passwd entry is only queried, and reported, once.
type IdentityCache struct {
	users      map[uint32]string
	groups     map[uint32]string
	lookupUser func(uid string) (string, error)
	lookupGrp  func(gid string) (string, error)
	onFailure  func(err error)
}

// NewIdentityCache creates a cache backed by os/user.
func NewIdentityCache() *IdentityCache {
	return NewIdentityCacheWithLookups(
		func(uid string) (string, error) {
			u, err := user.LookupId(uid)
			if err != nil {
				return "", err
			}
			return u.Username, nil
		},
		func(gid string) (string, error) {
			g, err := user.LookupGroupId(gid)
			if err != nil {
				return "", err
			}
			return g.Name, nil
		},
	)
}

// NewIdentityCacheWithLookups creates a cache with custom lookup functions.
// This is useful for testing.
func NewIdentityCacheWithLookups(lookupUser, lookupGroup func(id string) (string, error)) *IdentityCache {
	return &IdentityCache{
		users:      make(map[uint32]string),
		groups:     make(map[uint32]string),
		lookupUser: lookupUser,
		lookupGrp:  lookupGroup,
	}
}

// SetFailureHandler registers fn to receive a models.KindIdentityLookup
// error the first time an id fails to resolve. A nil fn disables reporting.
func (c *IdentityCache) SetFailureHandler(fn func(err error)) {
	c.onFailure = fn
}

// UserName returns the login name for uid, or models.UnknownIdentity.
func (c *IdentityCache) UserName(uid uint32) string {
	return c.cachedLookup(c.users, "lookup user", uid, c.lookupUser)
}

// GroupName returns the group name for gid, or models.UnknownIdentity.
func (c *IdentityCache) GroupName(gid uint32) string {
	return c.cachedLookup(c.groups, "lookup group", gid, c.lookupGrp)
}

func (c *IdentityCache) cachedLookup(cache map[uint32]string, op string, id uint32, lookup func(string) (string, error)) string {
	if name, ok := cache[id]; ok {
		return name
	}

	key := strconv.FormatUint(uint64(id), 10)
	name := models.UnknownIdentity
	if lookup != nil {
		resolved, err := lookup(key)
		switch {
		case err != nil:
			c.reportFailure(op, key, err)
		case resolved == "":
			c.reportFailure(op, key, errEmptyName)
		default:
			name = resolved
		}
	}

	cache[id] = name
	return name
}

func (c *IdentityCache) reportFailure(op, id string, err error) {
	if c.onFailure != nil {
		c.onFailure(models.NewPathError(models.KindIdentityLookup, op, id, err))
	}
}
