package mongo

import "github.com/rs/zerolog"

// logger adapts zerolog to the driver's LogSink.
type logger struct {
	log zerolog.Logger
}

func (l *logger) Info(level int, message string, keysAndValues ...any) {
	var event *zerolog.Event
	switch level {
	case 1:
		event = l.log.Info()
	case 2:
		event = l.log.Debug()
	default:
		return
	}
	l.withFields(event, keysAndValues...).Msg(message)
}

func (l *logger) Error(err error, message string, keysAndValues ...any) {
	l.withFields(l.log.Error().Err(err), keysAndValues...).Msg(message)
}

func (l *logger) withFields(event *zerolog.Event, keysAndValues ...any) *zerolog.Event {
	if len(keysAndValues)%2 != 0 {
		keysAndValues = append(keysAndValues, nil)
	}
	for i := 0; i < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			event = event.Interface(key, keysAndValues[i+1])
		}
	}
	return event
}
