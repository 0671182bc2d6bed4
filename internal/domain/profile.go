package domain

// EnglishLevel is the learner's self-assessed proficiency chosen during onboarding.
type EnglishLevel string

const (
	LevelBeginner          EnglishLevel = "Beginner"
	LevelElementary        EnglishLevel = "Elementary"
	LevelIntermediate      EnglishLevel = "Intermediate"
	LevelUpperIntermediate EnglishLevel = "Upper-Intermediate"
	LevelAdvanced          EnglishLevel = "Advanced"
)

// AllLevels lists the onboarding levels in display order.
var AllLevels = []EnglishLevel{
	LevelBeginner, LevelElementary, LevelIntermediate, LevelUpperIntermediate, LevelAdvanced,
}

func (l EnglishLevel) String() string { return string(l) }

func (l EnglishLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelElementary, LevelIntermediate, LevelUpperIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Description returns the short onboarding caption for the level.
func (l EnglishLevel) Description() string {
	switch l {
	case LevelBeginner:
		return "Just starting out"
	case LevelElementary:
		return "Basic understanding"
	case LevelIntermediate:
		return "Conversational level"
	case LevelUpperIntermediate:
		return "Advanced understanding"
	case LevelAdvanced:
		return "Fluent and confident"
	}
	return ""
}

// Interest is a topic the learner wants phrases about.
type Interest string

const (
	InterestTechnology    Interest = "Technology"
	InterestSports        Interest = "Sports"
	InterestEntertainment Interest = "Entertainment"
	InterestBusiness      Interest = "Business"
	InterestScience       Interest = "Science"
	InterestTravel        Interest = "Travel"
	InterestHealth        Interest = "Health"
	InterestArt           Interest = "Art"
	InterestMusic         Interest = "Music"
	InterestFood          Interest = "Food"
	InterestFashion       Interest = "Fashion"
	InterestGaming        Interest = "Gaming"
)

var AllInterests = []Interest{
	InterestTechnology, InterestSports, InterestEntertainment, InterestBusiness,
	InterestScience, InterestTravel, InterestHealth, InterestArt,
	InterestMusic, InterestFood, InterestFashion, InterestGaming,
}

func (i Interest) String() string { return string(i) }

func (i Interest) IsValid() bool {
	for _, v := range AllInterests {
		if v == i {
			return true
		}
	}
	return false
}

// Objective is a learning goal chosen during onboarding.
type Objective string

const (
	ObjectiveImproveSpeaking       Objective = "Improve Speaking"
	ObjectiveUnderstandMovies      Objective = "Understand Movies"
	ObjectivePassExams             Objective = "Pass Exams"
	ObjectiveBusinessCommunication Objective = "Business Communication"
	ObjectiveTravelConfidence      Objective = "Travel Confidence"
	ObjectiveDailyConversation     Objective = "Daily Conversation"
	ObjectiveExpandVocabulary      Objective = "Expand Vocabulary"
	ObjectiveImproveAccent         Objective = "Improve Accent"
	ObjectiveReadingComprehension  Objective = "Reading Comprehension"
	ObjectiveWritingSkills         Objective = "Writing Skills"
)

var AllObjectives = []Objective{
	ObjectiveImproveSpeaking, ObjectiveUnderstandMovies, ObjectivePassExams,
	ObjectiveBusinessCommunication, ObjectiveTravelConfidence, ObjectiveDailyConversation,
	ObjectiveExpandVocabulary, ObjectiveImproveAccent, ObjectiveReadingComprehension,
	ObjectiveWritingSkills,
}

func (o Objective) String() string { return string(o) }

func (o Objective) IsValid() bool {
	for _, v := range AllObjectives {
		if v == o {
			return true
		}
	}
	return false
}

// Preferences is the outcome of onboarding and drives phrase generation.
type Preferences struct {
	Level      EnglishLevel
	Interests  []Interest
	Objectives []Objective
}

// DefaultPreferences is used until the learner completes onboarding.
func DefaultPreferences() Preferences {
	return Preferences{
		Level:      LevelIntermediate,
		Interests:  []Interest{InterestTechnology, InterestBusiness},
		Objectives: []Objective{ObjectiveImproveSpeaking, ObjectiveExpandVocabulary},
	}
}

// InterestLabels returns the interests as plain strings for prompt building.
func (p Preferences) InterestLabels() []string {
	out := make([]string, len(p.Interests))
	for i, v := range p.Interests {
		out[i] = string(v)
	}
	return out
}

// ObjectiveLabels returns the objectives as plain strings for prompt building.
func (p Preferences) ObjectiveLabels() []string {
	out := make([]string, len(p.Objectives))
	for i, v := range p.Objectives {
		out[i] = string(v)
	}
	return out
}

// Validate reports the first invalid onboarding choice.
func (p Preferences) Validate() error {
	var errs []FieldError
	if !p.Level.IsValid() {
		errs = append(errs, FieldError{Field: "level", Message: "unknown level " + string(p.Level)})
	}
	for _, i := range p.Interests {
		if !i.IsValid() {
			errs = append(errs, FieldError{Field: "interests", Message: "unknown interest " + string(i)})
		}
	}
	for _, o := range p.Objectives {
		if !o.IsValid() {
			errs = append(errs, FieldError{Field: "objectives", Message: "unknown objective " + string(o)})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
