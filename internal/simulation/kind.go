package simulation

import "fmt"

// Kind is the closed set of entity variants. Its String form is the snapshot type name.
type Kind int

const (
	KindRobot Kind = iota
	KindChaser
	KindBeam
	KindBump
	KindSmart
	KindObstacle
)

var kindNames = [...]string{
	KindRobot:    "Robot",
	KindChaser:   "ChaserRobot",
	KindBeam:     "BeamRobot",
	KindBump:     "BumpRobot",
	KindSmart:    "SmartRobot",
	KindObstacle: "Obstacle",
}

// Kinds lists every variant in declaration order.
func Kinds() []Kind {
	return []Kind{KindRobot, KindChaser, KindBeam, KindBump, KindSmart, KindObstacle}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsAgent reports whether entities of this kind move on their own.
func (k Kind) IsAgent() bool {
	return k >= KindRobot && k <= KindSmart
}

// ParseKind resolves a snapshot type name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText lets a Kind appear as its type name in YAML or JSON documents.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
