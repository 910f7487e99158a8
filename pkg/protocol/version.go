// Package protocol provides the TLS wire format
package protocol

// Version enums.
var (
	Version1_0 = Version{Major: 0x03, Minor: 0x01} //nolint:gochecknoglobals
	Version1_1 = Version{Major: 0x03, Minor: 0x02} //nolint:gochecknoglobals
	Version1_2 = Version{Major: 0x03, Minor: 0x03} //nolint:gochecknoglobals
)

// Version is the major/minor value carried in the RecordLayer
// and ClientHello/ServerHello
//
// https://tools.ietf.org/html/rfc5246#appendix-E.1
type Version struct {
	Major, Minor uint8
}

// Equal determines if two protocol versions are equal.
func (v Version) Equal(x Version) bool {
	return v.Major == x.Major && v.Minor == x.Minor
}

// IsSupportedBytes returns true if the major/minor pair is a protocol
// version this package can run a key exchange for.
func IsSupportedBytes(major uint8, minor uint8) bool {
	return major == 0x03 && (minor == 0x01 || minor == 0x02 || minor == 0x03)
}

// IsSupportedVersion returns true if it's a protocol version this package
// can run a key exchange for.
func IsSupportedVersion(v Version) bool {
	return v.Equal(Version1_0) || v.Equal(Version1_1) || v.Equal(Version1_2)
}
