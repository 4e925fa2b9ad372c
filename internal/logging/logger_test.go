/*
 * Copyright 2025 SREDiag Authors
 * Copyright 2023 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
}

func (s *LoggerTestSuite) TearDownTest() {
	SetLevel(LevelWarn)
}

func (s *LoggerTestSuite) TestLogColor() {
	SetLevel(LevelTrace)
	l := New("test", nil)

	l.Tracef("this is tracef %s", "hello world")
	l.Debugf("this is debugf %s", "hello world")
	l.Infof("this is infof %s", "hello world")
	l.Warnf("this is warnf %s", "hello world")
	l.Errorf("this is errorf %s", "hello world")
}

func (s *LoggerTestSuite) TestLevelFiltering() {
	var buf bytes.Buffer
	l := New("test", &buf)

	SetLevel(LevelError)
	l.Infof("filtered out")
	s.Require().Zero(buf.Len())

	l.Errorf("kept %d", 1)
	s.Require().Contains(buf.String(), "kept 1")
	s.Require().Contains(buf.String(), "Error")
}

func (s *LoggerTestSuite) TestLoggerName() {
	var buf bytes.Buffer
	l := New("collector", &buf)

	SetLevel(LevelInfo)
	l.Infof("named line")
	s.Require().Contains(buf.String(), "collector")
	s.Require().Contains(buf.String(), "named line")
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
