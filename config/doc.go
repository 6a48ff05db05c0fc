// Package config loads the on-disk settings for an alignment run: the
// DTW-BD cost parameters, MFCC extraction parameters, and output
// preferences. Values loaded from YAML are overridable by CLI flags in
// cmd/afalign, which apply on top of whatever Load returns.
//
// 🚀 What is this for?
//
//	A batch run has more knobs than fit comfortably on a command line
//	(mel filter count, window length, output format) and some of them
//	rarely change between runs on the same corpus. This package is the
//	one place that knows the file shape and the defaults.
//
// ⚙️ Usage:
//
//	cfg, err := config.Load("afalign.yaml")
//	cfg.Radius = 50 // CLI flag override
package config
