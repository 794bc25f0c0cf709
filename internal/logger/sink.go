package logger

import (
	"github.com/ellanetworks/nascodec/lib/nas"
	"github.com/ellanetworks/nascodec/lib/nas/codec"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// ZapSink logs failed codec calls at warn level and successful ones at debug level.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(l *zap.Logger) *ZapSink {
	return &ZapSink{log: l}
}

func (s *ZapSink) Observe(ev nas.Event) {
	fields := []zap.Field{
		zap.Stringer("family", ev.Family),
		zap.String("messageType", nas.MessageName(ev.Family, ev.MessageType)),
	}

	if ev.Err == nil {
		s.log.Debug(ev.Op.String()+" ok", fields...)
		return
	}

	fields = append(fields,
		zap.String("kind", codec.Kind(ev.Err)),
		zap.Int("offset", ev.Offset),
		zap.Error(ev.Err),
	)
	s.log.Warn("could not "+ev.Op.String()+" NAS message", fields...)
}

type LogrusSink struct {
	log *logrus.Entry
}

func NewLogrusSink(e *logrus.Entry) *LogrusSink {
	return &LogrusSink{log: e}
}

func (s *LogrusSink) Observe(ev nas.Event) {
	entry := s.log.WithFields(logrus.Fields{
		"family":      ev.Family.String(),
		"messageType": nas.MessageName(ev.Family, ev.MessageType),
	})

	if ev.Err == nil {
		entry.Debugf("%s ok", ev.Op)
		return
	}

	entry.WithFields(logrus.Fields{
		"kind":   codec.Kind(ev.Err),
		"offset": ev.Offset,
	}).Warnf("could not %s NAS message: %+v", ev.Op, ev.Err)
}
