package sessiontype

// Type identifies the kind of learning session occupying a calendar slot.
type Type string

const (
	ChallengeIntro Type = "challenge-intro"
	Learn          Type = "learn"
	Innovate       Type = "innovate"
	Transform      Type = "transform"
	Reflection     Type = "reflection"
	MockChallenge  Type = "mock-challenge"
	Masterclass    Type = "masterclass"
	Workshop       Type = "workshop"
	Gap            Type = "gap"
	GenericCBL     Type = "generic-cbl"
)

// All returns every session type in display order.
func All() []Type {
	return []Type{
		ChallengeIntro, Learn, Innovate, Transform, Reflection,
		MockChallenge, Masterclass, Workshop, Gap, GenericCBL,
	}
}

// Valid reports whether t is a known session type.
func (t Type) Valid() bool {
	switch t {
	case ChallengeIntro, Learn, Innovate, Transform, Reflection,
		MockChallenge, Masterclass, Workshop, Gap, GenericCBL:
		return true
	default:
		return false
	}
}

// DisplayName returns a human-readable label for the session type.
func (t Type) DisplayName() string {
	switch t {
	case ChallengeIntro:
		return "Challenge Intro"
	case Learn:
		return "Learn"
	case Innovate:
		return "Innovate"
	case Transform:
		return "Transform"
	case Reflection:
		return "Reflection"
	case MockChallenge:
		return "Mock Challenge"
	case Masterclass:
		return "Masterclass"
	case Workshop:
		return "Workshop"
	case Gap:
		return "GAP"
	case GenericCBL:
		return "CBL Session"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the session type.
func (t Type) Icon() string {
	switch t {
	case ChallengeIntro:
		return "🚀"
	case Learn:
		return "📚"
	case Innovate:
		return "💡"
	case Transform:
		return "🎤"
	case Reflection:
		return "🪞"
	case MockChallenge:
		return "🎯"
	case Masterclass:
		return "🎓"
	case Workshop:
		return "🔧"
	case Gap:
		return "⏸️"
	case GenericCBL:
		return "📋"
	default:
		return "✦"
	}
}

// InChallengeFamily reports whether sessions of this type can belong to a
// challenge group. Only family members with a challenge id participate in
// boundary detection.
func (t Type) InChallengeFamily() bool {
	switch t {
	case ChallengeIntro, Learn, Innovate, Transform, Reflection,
		MockChallenge, GenericCBL:
		return true
	case Masterclass, Workshop, Gap:
		return false
	default:
		return false
	}
}

// Interior reports whether sessions of this type must stay sandwiched
// inside their challenge's boundary envelope.
func (t Type) Interior() bool {
	return t == Learn || t == Innovate
}

// Anchor reports whether sessions of this type define the envelope's edges.
// Moving an anchor is how a user intentionally resizes the boundary.
func (t Type) Anchor() bool {
	return t == ChallengeIntro || t == Transform
}

// Standalone reports whether this type is planned as a single session with
// no challenge linkage.
func (t Type) Standalone() bool {
	switch t {
	case Masterclass, Workshop, Gap, MockChallenge:
		return true
	default:
		return false
	}
}
