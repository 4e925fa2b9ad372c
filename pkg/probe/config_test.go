package probe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestDefaultConfig() {
	config := DefaultConfig()
	s.Require().Equal([]string{SectionSync}, config.Sections)
	s.Require().Equal(FormatText, config.Format)
	s.Require().Empty(config.ListenAddr)
	s.Require().Nil(VerifyConfig(config))
}

func (s *ConfigTestSuite) TestVerifyConfig() {
	err := VerifyConfig(nil)
	s.Require().NotNil(err)

	config := DefaultConfig()
	config.Sections = nil
	err = VerifyConfig(config)
	s.Require().NotNil(err)

	config.Sections = []string{"bogus"}
	err = VerifyConfig(config)
	s.Require().ErrorIs(err, ErrUnknownSection)

	config.Sections = []string{SectionSync, SectionSync}
	err = VerifyConfig(config)
	s.Require().NotNil(err)

	config.Sections = []string{SectionSync, SectionMemory, SectionHost}
	err = VerifyConfig(config)
	s.Require().Nil(err)

	config.Format = "yaml"
	err = VerifyConfig(config)
	s.Require().NotNil(err)
	config.Format = FormatJSON

	config.PoolSize = 0
	err = VerifyConfig(config)
	s.Require().NotNil(err)
	config.PoolSize = 4

	config.Timeout = -time.Second
	err = VerifyConfig(config)
	s.Require().NotNil(err)
	config.Timeout = time.Second

	err = VerifyConfig(config)
	s.Require().Nil(err)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
