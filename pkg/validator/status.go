/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/go-enums/pkg/enums"
)

// VerificationStatus represents the overall verification outcome.
type VerificationStatus int

const (
	// VerificationStatusPass indicates all checks passed.
	VerificationStatusPass VerificationStatus = iota

	// VerificationStatusFail indicates one or more checks failed.
	VerificationStatusFail

	// VerificationStatusPartial indicates some checks couldn't be evaluated.
	VerificationStatusPartial

	numVerificationStatuses
)

var verificationStatuses = enums.MustNew[VerificationStatus](
	[]string{"pass", "fail", "partial"},
	enums.WithCount(int(numVerificationStatuses)))

// String returns the status label.
func (s VerificationStatus) String() string {
	return verificationStatuses.Format(s)
}

// IsValid reports whether the status is one of the declared values.
func (s VerificationStatus) IsValid() bool {
	return verificationStatuses.IsValid(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s VerificationStatus) MarshalText() ([]byte, error) {
	return verificationStatuses.MarshalText(s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *VerificationStatus) UnmarshalText(data []byte) error {
	v, err := verificationStatuses.UnmarshalText(data)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s VerificationStatus) MarshalYAML() (any, error) {
	return verificationStatuses.Label(s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *VerificationStatus) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := verificationStatuses.Parse(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// CheckStatus represents the outcome of a single generated-file check.
type CheckStatus int

const (
	// CheckStatusPassed indicates the on-disk file matches the expected rendering.
	CheckStatusPassed CheckStatus = iota

	// CheckStatusFailed indicates the on-disk file differs from the expected rendering.
	CheckStatusFailed

	// CheckStatusSkipped indicates the check couldn't be evaluated.
	CheckStatusSkipped

	numCheckStatuses
)

var checkStatuses = enums.MustNew[CheckStatus](
	[]string{"passed", "failed", "skipped"},
	enums.WithCount(int(numCheckStatuses)))

// String returns the status label.
func (s CheckStatus) String() string {
	return checkStatuses.Format(s)
}

// IsValid reports whether the status is one of the declared values.
func (s CheckStatus) IsValid() bool {
	return checkStatuses.IsValid(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s CheckStatus) MarshalText() ([]byte, error) {
	return checkStatuses.MarshalText(s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CheckStatus) UnmarshalText(data []byte) error {
	v, err := checkStatuses.UnmarshalText(data)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s CheckStatus) MarshalYAML() (any, error) {
	return checkStatuses.Label(s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *CheckStatus) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := checkStatuses.Parse(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
