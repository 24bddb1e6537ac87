// Package config loads runtime settings and the answers and report files used
// by the non-interactive commands.
//
// [Settings] carries every delay of the simulated wizard plus logging and
// metrics options. Values come from defaults, an optional settings file and
// ONBOARD_* environment variables, in increasing precedence.
//
// [Answers] is the YAML document consumed by `onboard apply` and produced by
// `onboard init`. [Report] is the YAML summary written after a headless run.
package config
