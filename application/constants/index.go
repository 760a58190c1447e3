package constants

import "time"

// Reason codes appended to the entry-point redirect so the landing page can
// explain why the flow restarted.
var REASON_MISSING_TOKEN = "missing-token"
var REASON_AUTH_FAILED = "auth-failed"
var REASON_AUTH_REQUIRED = "auth-required"

// Session and credential lifetimes. Absolute, not sliding.
var PRIMARY_SESSION_TTL_MINUTES = 60
var PHONE_CHALLENGE_TTL_MINUTES = 15
var STEP_UP_CREDENTIAL_TTL = time.Hour

// Telemetry event kinds.
var EVENT_LINK_REQUESTED = "link_requested"
var EVENT_PRIMARY_AUTHENTICATED = "primary_authenticated"
var EVENT_OTP_REQUESTED = "otp_requested"
var EVENT_STEP_UP_COMPLETE = "step_up_complete"
var EVENT_ACCESS_REQUEST = "access_request"
var EVENT_VALUATION_RUN = "valuation_run"
