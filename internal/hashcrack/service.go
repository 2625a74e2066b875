package hashcrack

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ykhdr/crack-hash/internal/hashcrack/cracker"
	"github.com/ykhdr/crack-hash/internal/hashcrack/digest"
)

// Request is everything a caller must supply; there are no defaults.
type Request struct {
	Algorithm string
	Hash      string
	Wordlist  string
}

type Service struct {
	l       zerolog.Logger
	cracker *cracker.Cracker
}

func NewService(reporter cracker.Reporter, progressInterval uint64) *Service {
	return &Service{
		cracker: cracker.New(
			cracker.WithReporter(reporter),
			cracker.WithProgressInterval(progressInterval),
		),
		l: log.With().
			Str("domain", "hashcrack").
			Logger(),
	}
}

// Run validates the request and scans the wordlist. Algorithm and hash
// errors are returned before the wordlist is opened.
func (s *Service) Run(ctx context.Context, req Request) (*cracker.Outcome, error) {
	s.l.Debug().
		Str("algorithm", req.Algorithm).
		Str("hash", req.Hash).
		Str("wordlist", req.Wordlist).
		Msg("cracking request")
	alg, err := digest.Validate(req.Algorithm, req.Hash)
	if err != nil {
		s.l.Debug().Err(err).Msg("request rejected")
		return nil, err
	}
	outcome, err := s.cracker.Crack(ctx, alg, req.Hash, req.Wordlist)
	if err != nil {
		s.l.Debug().Err(err).Msg("scan failed")
		return nil, err
	}
	s.l.Debug().
		Stringer("status", outcome.Status()).
		Uint64("attempts", outcome.Stats().Attempts).
		Msg("scan finished")
	return outcome, nil
}
