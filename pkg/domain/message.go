package domain

// Inbound and outbound topic names. The request topics are produced by the
// backend when a member uploads a document; the response topics carry the
// verification outcome back.
const (
	TopicLicenseRequest      = "business_license_request"
	TopicLicenseResponse     = "business_license_response"
	TopicCertificateRequest  = "certificate_request"
	TopicCertificateResponse = "certificate_response"
)

// ConsumerGroup is the broker consumer group shared by all verifier
// instances.
const ConsumerGroup = "business_license_group"

// VerificationRequest is the JSON body of an inbound request message. The
// same shape is used on both request topics; the topic decides the document
// type.
type VerificationRequest struct {
	// ID is the requesting member's id, sent as a numeric string.
	ID string `json:"id"`
	// Path is the URL of the uploaded document image.
	Path string `json:"path"`
}

// Fixed status strings carried in license responses. The backend matches on
// these verbatim, so they are part of the wire contract.
const (
	StatusRegistered   = "트레이너 등록에 성공했습니다"
	StatusDeregistered = "폐업한 사업자 입니다"
	StatusInvalid      = "유효하지 않은 사업자 등록 정보입니다"
	StatusInternal     = "문서 처리 중 오류가 발생했습니다"
)

// LicenseResponse is the JSON body published on TopicLicenseResponse.
// Exactly one response is published per decodable request.
type LicenseResponse struct {
	// UserID echoes the correlation id of the request.
	UserID int `json:"user_id"`
	// GymID is the matched registry entity, or null when no candidate
	// cleared the acceptance threshold (or resolution was not attempted).
	GymID *int `json:"gym_id"`
	// Message is one of the fixed status strings above.
	Message string `json:"message"`
}

// CertificateResponse is the JSON body published on
// TopicCertificateResponse.
type CertificateResponse struct {
	Status     string `json:"status"`
	CertNumber string `json:"certNumber,omitempty"`
	Name       string `json:"name,omitempty"`
	Level      string `json:"level,omitempty"`
	ID         int    `json:"id"`
	Path       string `json:"path,omitempty"`
}

// Certificate response statuses.
const (
	CertStatusSuccess = "success"
	CertStatusFail    = "fail"
)
