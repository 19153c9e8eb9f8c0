package domain

// Field is a canonical field name in the document schema. The wire names
// match what the business registry-of-record expects in its validation
// payload.
type Field string

const (
	// FieldRegistrationNumber is the 10-digit business registration number.
	FieldRegistrationNumber Field = "b_no"
	// FieldBusinessName is the registered trade name.
	FieldBusinessName Field = "b_nm"
	// FieldOwnerName is the representative's name.
	FieldOwnerName Field = "p_nm"
	// FieldAddress is the place-of-business address.
	FieldAddress Field = "business_address"
	// FieldBirthDate is the representative's date of birth (YYYYMMDD).
	FieldBirthDate Field = "date_of_birth"
	// FieldStartDate is the business opening date (YYYYMMDD).
	FieldStartDate Field = "start_dt"
)

// LicenseSchema lists every canonical field of a business license, in the
// order fields are reconciled.
func LicenseSchema() []Field {
	return []Field{
		FieldRegistrationNumber,
		FieldBusinessName,
		FieldOwnerName,
		FieldAddress,
		FieldBirthDate,
		FieldStartDate,
	}
}

const (
	// FieldCertNumber is the certification number printed on a certificate.
	FieldCertNumber Field = "cert_number"
	// FieldCertHolder is the certificate holder's name.
	FieldCertHolder Field = "name"
	// FieldCertLevel is the certification grade or level.
	FieldCertLevel Field = "level"
	// FieldCertIssueDate is the acquisition date (YYYYMMDD).
	FieldCertIssueDate Field = "issue_dt"
)

// CertificateSchema lists every canonical field of a professional
// certificate.
func CertificateSchema() []Field {
	return []Field{
		FieldCertNumber,
		FieldCertHolder,
		FieldCertLevel,
		FieldCertIssueDate,
	}
}

// FieldMap maps every canonical field of one schema to its extracted value.
// Invariants: after normalization every schema field is present as a key, a
// nil value means the field could not be resolved, and no keys outside the
// schema survive. Values are replaced by cleaning rules, never edited in
// place.
type FieldMap map[Field]*string

// Get returns the value for f, or "" when the field is unresolved.
func (m FieldMap) Get(f Field) string {
	if v := m[f]; v != nil {
		return *v
	}

	return ""
}

// Has reports whether f resolved to a non-nil value.
func (m FieldMap) Has(f Field) bool {
	return m[f] != nil
}
