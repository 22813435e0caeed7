package surface

import "github.com/google/uuid"

// ID identifies an interactive region across frames. The zero value is
// NoID and never matches a registered region.
type ID uuid.UUID

// NoID is the empty identity.
var NoID = ID(uuid.Nil)

// rootSpace seeds every name-derived identity.
var rootSpace = uuid.MustParse("6f1c2a7e-5b0d-4f58-9b8e-3d2f64c0a1d9")

// NewID returns a fresh random identity.
func NewID() ID { return ID(uuid.New()) }

// IDFromName derives an identity from a name. Equal names give equal ids.
func IDFromName(name string) ID { return ID(uuid.NewSHA1(rootSpace, []byte(name))) }

// With derives a child identity scoped under id.
func (id ID) With(name string) ID { return ID(uuid.NewSHA1(uuid.UUID(id), []byte(name))) }

// IsZero reports whether id is NoID.
func (id ID) IsZero() bool { return id == NoID }

// String implements fmt.Stringer.
func (id ID) String() string { return uuid.UUID(id).String() }
