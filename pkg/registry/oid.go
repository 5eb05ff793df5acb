package registry

import "github.com/keyfold/keyfold/pkg/keyword"

// certOIDs maps certificate property names to dotted-decimal OIDs. The set
// covers the X.500 attribute types, the standard X.509 v3 extensions, and
// the common signature and public-key algorithm identifiers.
var certOIDs = keyword.MustDictionary(map[string]string{
	// X.500 attribute types (subject and issuer names)
	"common-name":              "2.5.4.3",
	"surname":                  "2.5.4.4",
	"serial-number":            "2.5.4.5",
	"country-name":             "2.5.4.6",
	"locality-name":            "2.5.4.7",
	"state-or-province-name":   "2.5.4.8",
	"street-address":           "2.5.4.9",
	"organization-name":        "2.5.4.10",
	"organizational-unit-name": "2.5.4.11",
	"title":                    "2.5.4.12",
	"given-name":               "2.5.4.42",
	"email-address":            "1.2.840.113549.1.9.1",

	// X.509 v3 extensions
	"subject-key-identifier":   "2.5.29.14",
	"key-usage":                "2.5.29.15",
	"subject-alternative-name": "2.5.29.17",
	"issuer-alternative-name":  "2.5.29.18",
	"basic-constraints":        "2.5.29.19",
	"name-constraints":         "2.5.29.30",
	"crl-distribution-points":  "2.5.29.31",
	"certificate-policies":     "2.5.29.32",
	"authority-key-identifier": "2.5.29.35",
	"extended-key-usage":       "2.5.29.37",
	"authority-info-access":    "1.3.6.1.5.5.7.1.1",

	// Signature and public-key algorithms
	"rsa-encryption":    "1.2.840.113549.1.1.1",
	"sha256-with-rsa":   "1.2.840.113549.1.1.11",
	"sha384-with-rsa":   "1.2.840.113549.1.1.12",
	"sha512-with-rsa":   "1.2.840.113549.1.1.13",
	"ecdsa-with-sha256": "1.2.840.10045.4.3.2",
	"ecdsa-with-sha384": "1.2.840.10045.4.3.3",
	"ec-public-key":     "1.2.840.10045.2.1",
	"ed25519":           "1.3.101.112",

	// Extended key usage purposes
	"server-auth":      "1.3.6.1.5.5.7.3.1",
	"client-auth":      "1.3.6.1.5.5.7.3.2",
	"code-signing":     "1.3.6.1.5.5.7.3.3",
	"email-protection": "1.3.6.1.5.5.7.3.4",
	"time-stamping":    "1.3.6.1.5.5.7.3.8",
	"ocsp-signing":     "1.3.6.1.5.5.7.3.9",
})

// CertificateOIDs returns the certificate property dictionary, mapping
// property names to dotted-decimal OID strings. It is a lookup table only;
// interpreting or validating certificate contents is out of scope.
func CertificateOIDs() *keyword.Dictionary[string] {
	return certOIDs
}
