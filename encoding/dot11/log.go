// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package dot11

import "github.com/sirupsen/logrus"

var _lg = logrus.New()

// SetLogger replaces the package-wide logger. Parsing itself stays a pure
// function; the logger only receives a debug entry when the mandatory
// header fails to decode, and never affects decode results.
func SetLogger(lg *logrus.Logger) {
	_lg = lg
}

func init() {
	_lg.SetLevel(logrus.WarnLevel)
}
