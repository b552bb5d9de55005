// Package noop provides a service standing in for a disabled service
// in a services sequence.
package noop

import "context"

type Infoer interface {
	Info(s string)
}

type Service struct {
	name   string
	logger Infoer
}

func New(name string, logger Infoer) *Service {
	return &Service{
		name:   name,
		logger: logger,
	}
}

func (s *Service) String() string {
	return s.name + " (disabled)"
}

// Start logs the service is disabled and returns a nil run error
// channel, which never receives.
func (s *Service) Start(_ context.Context) (runError <-chan error, startErr error) {
	s.logger.Info(s.name + " is disabled")
	return nil, nil
}

func (s *Service) Stop() (err error) {
	return nil
}
