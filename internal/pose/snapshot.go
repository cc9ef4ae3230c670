package pose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/roach88/avatarhash/internal/skeleton"
)

// Document is the on-disk form of a snapshot.
type Document struct {
	Body          string               `json:"body,omitempty" yaml:"body,omitempty"`
	Valid         *bool                `json:"valid,omitempty" yaml:"valid,omitempty"`
	EyeHeight     float64              `json:"eye_height,omitempty" yaml:"eye_height,omitempty"`
	OriginTracked bool                 `json:"origin_tracked,omitempty" yaml:"origin_tracked,omitempty"`
	Bones         map[string][]float64 `json:"bones" yaml:"bones"`
}

// Snapshot is a loaded pose. It implements skeleton.Body.
type Snapshot struct {
	ID string

	valid         bool
	eyeHeight     float64
	originTracked bool
	bones         map[skeleton.Bone]r3.Vec
}

var _ skeleton.Body = (*Snapshot)(nil)

// NewSnapshot validates doc and resolves its bone names.
func NewSnapshot(doc Document) (*Snapshot, error) {
	s := &Snapshot{
		ID:            doc.Body,
		valid:         doc.Valid == nil || *doc.Valid,
		eyeHeight:     doc.EyeHeight,
		originTracked: doc.OriginTracked,
		bones:         make(map[skeleton.Bone]r3.Vec, len(doc.Bones)),
	}

	seen := make(map[skeleton.Bone]string, len(doc.Bones))
	for name, coords := range doc.Bones {
		b, err := skeleton.ParseBone(name)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeUnknownBone, Message: err.Error(), Err: err}
		}
		if prev, dup := seen[b]; dup {
			return nil, &LoadError{
				Code:    ErrCodeUnknownBone,
				Message: fmt.Sprintf("bones %q and %q both name %s", prev, name, b),
			}
		}
		seen[b] = name

		v, err := toVec(coords)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeCoordinates, Message: fmt.Sprintf("bone %s: %v", name, err)}
		}
		s.bones[b] = v
	}

	if math.IsNaN(doc.EyeHeight) || math.IsInf(doc.EyeHeight, 0) {
		return nil, &LoadError{Code: ErrCodeCoordinates, Message: "eye_height is not finite"}
	}

	return s, nil
}

func toVec(coords []float64) (r3.Vec, error) {
	if len(coords) != 3 {
		return r3.Vec{}, fmt.Errorf("expected [x, y, z], got %d values", len(coords))
	}
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return r3.Vec{}, fmt.Errorf("coordinate %v is not finite", c)
		}
	}
	return r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// Valid implements skeleton.Body.
func (s *Snapshot) Valid() bool {
	return s != nil && s.valid
}

// BonePosition implements skeleton.Body.
func (s *Snapshot) BonePosition(b skeleton.Bone) (r3.Vec, bool) {
	if s == nil {
		return r3.Vec{}, false
	}
	v, ok := s.bones[b]
	if !ok {
		return r3.Vec{}, false
	}
	if !s.originTracked && v == (r3.Vec{}) {
		return r3.Vec{}, false
	}
	return v, true
}

// EyeHeight implements skeleton.Body.
func (s *Snapshot) EyeHeight() float64 {
	if s == nil {
		return 0
	}
	return s.eyeHeight
}

// Tracked returns the number of bones the snapshot reports as present.
func (s *Snapshot) Tracked() int {
	n := 0
	for _, b := range skeleton.AllBones() {
		if _, ok := s.BonePosition(b); ok {
			n++
		}
	}
	return n
}

// Scaled returns a copy with every position and the eye height multiplied
// by k. Fingerprints are unchanged by uniform scaling up to rounding.
func (s *Snapshot) Scaled(k float64) *Snapshot {
	out := &Snapshot{
		ID:            s.ID,
		valid:         s.valid,
		eyeHeight:     s.eyeHeight * k,
		originTracked: s.originTracked,
		bones:         make(map[skeleton.Bone]r3.Vec, len(s.bones)),
	}
	for b, v := range s.bones {
		out.bones[b] = r3.Scale(k, v)
	}
	return out
}

// Document converts the snapshot back to its on-disk form using canonical
// bone names.
func (s *Snapshot) Document() Document {
	valid := s.valid
	doc := Document{
		Body:          s.ID,
		Valid:         &valid,
		EyeHeight:     s.eyeHeight,
		OriginTracked: s.originTracked,
		Bones:         make(map[string][]float64, len(s.bones)),
	}
	for b, v := range s.bones {
		doc.Bones[b.String()] = []float64{v.X, v.Y, v.Z}
	}
	return doc
}
