// Copyright 2021 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

// Package dot11 is implementation for decoding IEEE 802.11-2012 MAC
// Protocol Data Units (MPDUs).
// document version: IEEE Std 802.11-2012
package dot11
