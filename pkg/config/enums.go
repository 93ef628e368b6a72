package config

import "fmt"

// Direction classifies which way traffic flows through an integration.
type Direction string

// Direction values.
const (
	DirectionOutbound  Direction = "OUTBOUND"
	DirectionInbound   Direction = "INBOUND"
	DirectionScheduled Direction = "SCHEDULED"
)

// Valid reports whether the direction is a known value.
func (d Direction) Valid() bool {
	switch d {
	case DirectionOutbound, DirectionInbound, DirectionScheduled:
		return true
	}
	return false
}

// Scope controls which org units an integration applies to.
type Scope string

// Scope values.
const (
	ScopeEntityOnly      Scope = "ENTITY_ONLY"
	ScopeIncludeChildren Scope = "INCLUDE_CHILDREN"
)

// Valid reports whether the scope is a known value.
func (s Scope) Valid() bool {
	return s == ScopeEntityOnly || s == ScopeIncludeChildren
}

// DeliveryMode controls when a matched integration is dispatched.
type DeliveryMode string

// DeliveryMode values.
const (
	DeliveryImmediate DeliveryMode = "IMMEDIATE"
	DeliveryDelayed   DeliveryMode = "DELAYED"
	DeliveryRecurring DeliveryMode = "RECURRING"
)

// Valid reports whether the delivery mode is a known value.
func (m DeliveryMode) Valid() bool {
	switch m {
	case DeliveryImmediate, DeliveryDelayed, DeliveryRecurring:
		return true
	}
	return false
}

// TransformMode selects how the outbound body is produced.
type TransformMode string

// TransformMode values.
const (
	TransformSimple TransformMode = "SIMPLE"
	TransformScript TransformMode = "SCRIPT"
)

// Valid reports whether the transform mode is a known value.
func (m TransformMode) Valid() bool {
	return m == TransformSimple || m == TransformScript
}

// AuthType discriminates the tagged auth variant.
type AuthType string

// AuthType values.
const (
	AuthNone          AuthType = "NONE"
	AuthAPIKey        AuthType = "API_KEY"
	AuthBasic         AuthType = "BASIC"
	AuthBearer        AuthType = "BEARER"
	AuthOAuth1        AuthType = "OAUTH1"
	AuthOAuth2        AuthType = "OAUTH2"
	AuthCustom        AuthType = "CUSTOM"
	AuthCustomHeaders AuthType = "CUSTOM_HEADERS"
)

// Valid reports whether the auth type is a known value.
func (t AuthType) Valid() bool {
	switch t {
	case AuthNone, AuthAPIKey, AuthBasic, AuthBearer, AuthOAuth1, AuthOAuth2, AuthCustom, AuthCustomHeaders:
		return true
	}
	return false
}

// OnError controls whether a failing action stops later actions.
type OnError string

// OnError values. CONTINUE is the default: a failing action does not
// short-circuit subsequent actions.
const (
	OnErrorContinue OnError = "CONTINUE"
	OnErrorStop     OnError = "STOP"
)

// Valid reports whether the on-error policy is a known value.
func (o OnError) Valid() bool {
	return o == OnErrorContinue || o == OnErrorStop || o == ""
}

// SourceType discriminates event source backends.
type SourceType string

// SourceType values.
const (
	SourceMySQL SourceType = "MYSQL"
	SourceMongo SourceType = "MONGO"
	SourceHTTP  SourceType = "HTTP"
)

// Valid reports whether the source type is a known value.
func (t SourceType) Valid() bool {
	switch t {
	case SourceMySQL, SourceMongo, SourceHTTP:
		return true
	}
	return false
}

// parseEnum is a helper for UnmarshalYAML-style validation messages.
func parseEnum[T ~string](raw string, valid func(T) bool, what string) (T, error) {
	v := T(raw)
	if !valid(v) {
		return v, fmt.Errorf("%w: unknown %s %q", ErrInvalidValue, what, raw)
	}
	return v, nil
}
