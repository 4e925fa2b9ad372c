package probe

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CollectorTestSuite struct {
	suite.Suite
}

func staticSection(value uint64) ProbeFunc {
	return func(_ context.Context) ([]Fact, error) {
		return []Fact{{Name: "v", Kind: FactCount, Value: value}}, nil
	}
}

func (s *CollectorTestSuite) newCollector(registry *Registry, poolSize int, timeout time.Duration) *Collector {
	config := DefaultConfig()
	config.PoolSize = poolSize
	config.Timeout = timeout
	c, err := NewCollector(registry, config, nil)
	s.Require().Nil(err)
	return c
}

func (s *CollectorTestSuite) TestCollectPreservesOrder() {
	registry := NewRegistry()
	names := []string{"epsilon", "alpha", "delta", "beta", "gamma"}
	for i, name := range names {
		s.Require().NoError(registry.Register(name, staticSection(uint64(i))))
	}

	for _, poolSize := range []int{1, 2, 8} {
		c := s.newCollector(registry, poolSize, time.Second)
		report, err := c.Collect(context.Background(), nil)
		s.Require().Nil(err)
		s.Require().Len(report.Sections, len(names))
		for i, sec := range report.Sections {
			s.Require().Equal(names[i], sec.Name)
			s.Require().Nil(sec.Err)
			s.Require().Equal(uint64(i), sec.Facts[0].Value)
		}
		c.Close()
	}
}

func (s *CollectorTestSuite) TestCollectTwiceIsIdentical() {
	registry := NewRegistry()
	s.Require().NoError(registry.Register("fixed", staticSection(7)))

	c := s.newCollector(registry, 2, time.Second)
	defer c.Close()

	first, err := c.Collect(context.Background(), []string{"fixed"})
	s.Require().Nil(err)
	second, err := c.Collect(context.Background(), []string{"fixed"})
	s.Require().Nil(err)
	s.Require().Equal(first.Sections, second.Sections)
}

func (s *CollectorTestSuite) TestSectionErrorIsRecorded() {
	registry := NewRegistry()
	sentinel := errors.New("probe blew up")
	s.Require().NoError(registry.Register("ok", staticSection(1)))
	s.Require().NoError(registry.Register("bad", func(_ context.Context) ([]Fact, error) {
		return nil, sentinel
	}))

	c := s.newCollector(registry, 2, time.Second)
	defer c.Close()

	report, err := c.Collect(context.Background(), []string{"ok", "bad"})
	s.Require().Nil(err)
	s.Require().Nil(report.Sections[0].Err)
	s.Require().ErrorIs(report.Sections[1].Err, sentinel)
	s.Require().True(report.Failed())
}

func (s *CollectorTestSuite) TestCollectUnknownSection() {
	c := s.newCollector(NewRegistry(), 2, time.Second)
	defer c.Close()

	report, err := c.Collect(context.Background(), []string{"nope"})
	s.Require().ErrorIs(err, ErrUnknownSection)
	s.Require().Nil(report)
}

func (s *CollectorTestSuite) TestSectionTimeout() {
	registry := NewRegistry()
	s.Require().NoError(registry.Register("slow", func(ctx context.Context) ([]Fact, error) {
		<-ctx.Done()
		return nil, fmt.Errorf("slow section: %w", ctx.Err())
	}))

	c := s.newCollector(registry, 1, 20*time.Millisecond)
	defer c.Close()

	report, err := c.Collect(context.Background(), []string{"slow"})
	s.Require().Nil(err)
	s.Require().ErrorIs(report.Sections[0].Err, context.DeadlineExceeded)
}

func (s *CollectorTestSuite) TestNilConfigUsesDefaults() {
	c, err := NewCollector(nil, nil, nil)
	s.Require().Nil(err)
	c.Close()
}

func TestCollectorTestSuite(t *testing.T) {
	suite.Run(t, new(CollectorTestSuite))
}
