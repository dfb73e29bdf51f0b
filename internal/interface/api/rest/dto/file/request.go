package file

// UploadMetadata is the JSON sidecar part of the multipart upload form. The
// server records these values verbatim; it cannot check any of them against
// the encrypted payload.
type UploadMetadata struct {
	OriginalName         string `json:"original_name"`
	MimeType             string `json:"mime_type"`
	SizeBytes            int64  `json:"size_bytes"`
	ClientEncryptionAlgo string `json:"client_encryption_algo"`
}
