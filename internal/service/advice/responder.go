package advice

import (
	"time"

	"github.com/carepal/backend/internal/analysis/triage"
)

// Responder renders the rule-based answer for a classified input.
type Responder struct {
	emergencyNumber string
	location        *time.Location
	now             func() time.Time
}

// Option configures a Responder.
type Option func(*Responder)

// WithEmergencyNumber sets the number emergency answers tell the user to call.
func WithEmergencyNumber(number string) Option {
	return func(r *Responder) {
		if number != "" {
			r.emergencyNumber = number
		}
	}
}

// WithLocation sets the time zone greetings are computed in.
func WithLocation(loc *time.Location) Option {
	return func(r *Responder) {
		if loc != nil {
			r.location = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Responder) {
		if now != nil {
			r.now = now
		}
	}
}

// NewResponder builds a Responder using 911 and local time unless told otherwise.
func NewResponder(opts ...Option) *Responder {
	r := &Responder{
		emergencyNumber: DefaultEmergencyNumber,
		location:        time.Local,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EmergencyNumber returns the configured emergency number.
func (r *Responder) EmergencyNumber() string {
	return r.emergencyNumber
}

// Hour returns the current hour in the responder's time zone.
func (r *Responder) Hour() int {
	return r.now().In(r.location).Hour()
}

// Respond renders the answer for route. input is the raw user text, used by
// the exercise planner; name personalises greetings.
func (r *Responder) Respond(route triage.Route, input, name string) string {
	switch route.Kind {
	case triage.KindEmergency:
		return Emergency(route.Emergency, r.emergencyNumber)
	case triage.KindGreeting:
		return Greeting(name, r.Hour())
	case triage.KindRefusal:
		return Refusal(route.Category, r.emergencyNumber)
	case triage.KindTopic:
		return Topic(route.Topic, input)
	default:
		return Fallback()
	}
}

// Topic renders the guide for topic. Unknown topics get the fallback.
func Topic(topic triage.Topic, input string) string {
	switch topic {
	case triage.TopicNutrition:
		return Nutrition()
	case triage.TopicExercise, triage.TopicMeasurement:
		return Exercise(input)
	}
	if text, ok := Condition(topic); ok {
		return text
	}
	return Fallback()
}
