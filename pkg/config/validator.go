package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateAll validates every loaded definition. The first error aborts the
// load; a gateway must never start with a broken config.
func validateAll(integrations []*Integration, sources []*Source, channels []*AlertChannel) error {
	seen := make(map[string]bool, len(integrations))
	for _, i := range integrations {
		if seen[i.ID] {
			return NewValidationError("integration", i.ID, "id", fmt.Errorf("%w: duplicate id", ErrInvalidValue))
		}
		seen[i.ID] = true
		if err := validateIntegration(i); err != nil {
			return err
		}
	}

	for _, s := range sources {
		if err := validateSource(s); err != nil {
			return err
		}
	}

	for _, c := range channels {
		if err := validateAlertChannel(c); err != nil {
			return err
		}
	}
	return nil
}

func validateIntegration(i *Integration) error {
	if err := validate.Struct(i); err != nil {
		return NewValidationError("integration", i.ID, "", err)
	}

	if _, err := parseEnum(string(i.Direction), Direction.Valid, "direction"); err != nil {
		return NewValidationError("integration", i.ID, "direction", err)
	}
	if i.Scope != "" {
		if _, err := parseEnum(string(i.Scope), Scope.Valid, "scope"); err != nil {
			return NewValidationError("integration", i.ID, "scope", err)
		}
	}
	if i.DeliveryMode != "" {
		if _, err := parseEnum(string(i.DeliveryMode), DeliveryMode.Valid, "delivery_mode"); err != nil {
			return NewValidationError("integration", i.ID, "delivery_mode", err)
		}
	}

	switch i.Direction {
	case DirectionOutbound, DirectionScheduled:
		if i.EventType == "" && i.Direction == DirectionOutbound {
			return NewValidationError("integration", i.ID, "event_type", ErrMissingRequiredField)
		}
		if i.TargetURL == "" && !i.MultiAction() {
			return NewValidationError("integration", i.ID, "target_url", ErrMissingRequiredField)
		}
	case DirectionInbound:
		if i.ProxyPath == "" {
			return NewValidationError("integration", i.ID, "proxy_path", ErrMissingRequiredField)
		}
		if i.TargetURL == "" {
			return NewValidationError("integration", i.ID, "target_url", ErrMissingRequiredField)
		}
	}

	if (i.DeliveryMode == DeliveryDelayed || i.DeliveryMode == DeliveryRecurring) && i.SchedulingScript == "" {
		return NewValidationError("integration", i.ID, "scheduling_script", ErrMissingRequiredField)
	}

	if i.Auth != nil {
		if err := validateAuth(i.Auth); err != nil {
			return NewValidationError("integration", i.ID, "auth", err)
		}
	}
	if i.Transformation != nil {
		if err := validateTransformation(i.Transformation); err != nil {
			return NewValidationError("integration", i.ID, "transformation", err)
		}
	}
	if i.Signing != nil && len(i.Signing.Secrets) == 0 {
		return NewValidationError("integration", i.ID, "signing.secrets", ErrMissingRequiredField)
	}

	for idx, a := range i.Actions {
		field := fmt.Sprintf("actions[%d]", idx)
		if a.TargetURL == "" {
			return NewValidationError("integration", i.ID, field+".target_url", ErrMissingRequiredField)
		}
		if !a.OnError.Valid() {
			return NewValidationError("integration", i.ID, field+".on_error",
				fmt.Errorf("%w: unknown on_error %q", ErrInvalidValue, a.OnError))
		}
		if a.Auth != nil {
			if err := validateAuth(a.Auth); err != nil {
				return NewValidationError("integration", i.ID, field+".auth", err)
			}
		}
		if a.Transformation != nil {
			if err := validateTransformation(a.Transformation); err != nil {
				return NewValidationError("integration", i.ID, field+".transformation", err)
			}
		}
	}

	return nil
}

// validateAuth checks the variant-specific required fields.
func validateAuth(a *Auth) error {
	if _, err := parseEnum(string(a.Type), AuthType.Valid, "auth type"); err != nil {
		return err
	}
	missing := func(f string) error {
		return fmt.Errorf("%w: %s (auth type %s)", ErrMissingRequiredField, f, a.Type)
	}
	switch a.Type {
	case AuthAPIKey:
		if a.HeaderName == "" {
			return missing("header_name")
		}
		if a.APIKey == "" {
			return missing("api_key")
		}
	case AuthBasic:
		if a.Username == "" {
			return missing("username")
		}
	case AuthBearer:
		if a.Token == "" {
			return missing("token")
		}
	case AuthOAuth1:
		if a.ConsumerKey == "" || a.ConsumerSecret == "" {
			return missing("consumer_key/consumer_secret")
		}
	case AuthOAuth2:
		if a.TokenURL == "" {
			return missing("token_url")
		}
		if a.ClientID == "" || a.ClientSecret == "" {
			return missing("client_id/client_secret")
		}
	case AuthCustom:
		if a.TokenEndpoint == "" {
			return missing("token_endpoint")
		}
		if a.TokenPath == "" {
			return missing("token_path")
		}
	case AuthCustomHeaders:
		if len(a.Headers) == 0 {
			return missing("headers")
		}
	}
	return nil
}

func validateTransformation(t *Transformation) error {
	if _, err := parseEnum(string(t.Mode), TransformMode.Valid, "transform mode"); err != nil {
		return err
	}
	switch t.Mode {
	case TransformScript:
		if t.Script == "" {
			return fmt.Errorf("%w: script", ErrMissingRequiredField)
		}
	case TransformSimple:
		if len(t.Mappings) == 0 && len(t.StaticFields) == 0 {
			return fmt.Errorf("%w: mappings", ErrMissingRequiredField)
		}
		for _, m := range t.Mappings {
			switch m.Transform {
			case "", "none", "trim", "upper", "lower", "date", "default":
			default:
				return fmt.Errorf("%w: unknown mapping transform %q", ErrInvalidValue, m.Transform)
			}
		}
	}
	return nil
}

func validateSource(s *Source) error {
	if err := validate.Struct(s); err != nil {
		return NewValidationError("source", s.ID, "", err)
	}
	if _, err := parseEnum(string(s.Type), SourceType.Valid, "source type"); err != nil {
		return NewValidationError("source", s.ID, "type", err)
	}
	switch s.Type {
	case SourceMySQL:
		if s.ConnectionString == "" {
			return NewValidationError("source", s.ID, "connection_string", ErrMissingRequiredField)
		}
		if s.Table == "" {
			return NewValidationError("source", s.ID, "table", ErrMissingRequiredField)
		}
	case SourceMongo:
		if s.ConnectionString == "" {
			return NewValidationError("source", s.ID, "connection_string", ErrMissingRequiredField)
		}
		if s.Database == "" || s.Collection == "" {
			return NewValidationError("source", s.ID, "database/collection", ErrMissingRequiredField)
		}
	case SourceHTTP:
		if s.URL == "" {
			return NewValidationError("source", s.ID, "url", ErrMissingRequiredField)
		}
	}
	if s.PoolSize < 0 || s.PoolSize > 20 {
		return NewValidationError("source", s.ID, "pool_size",
			fmt.Errorf("%w: pool_size must be 1-20", ErrInvalidValue))
	}
	return nil
}

func validateAlertChannel(c *AlertChannel) error {
	if err := validate.Struct(c); err != nil {
		return NewValidationError("alert_channel", c.ID, "", err)
	}
	switch c.Key() {
	case "EMAIL:SMTP":
		if c.SMTPHost == "" || len(c.Recipients) == 0 {
			return NewValidationError("alert_channel", c.ID, "smtp_host/recipients", ErrMissingRequiredField)
		}
	case "SLACK:API":
		if c.SlackToken == "" || c.SlackChannel == "" {
			return NewValidationError("alert_channel", c.ID, "slack_token/slack_channel", ErrMissingRequiredField)
		}
	default:
		return NewValidationError("alert_channel", c.ID, "channel",
			fmt.Errorf("%w: unsupported channel %q", ErrInvalidValue, c.Key()))
	}
	return nil
}
