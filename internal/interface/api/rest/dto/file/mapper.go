package file

import (
	domain "blindstore-api/internal/domain/file"
)

func ToResponseFile(fDomain domain.File) File {
	return File{
		ID:           fDomain.ID,
		OriginalName: fDomain.Name,
		MimeType:     fDomain.MimeType,
		SizeBytes:    fDomain.SizeBytes,
		CreatedAt:    fDomain.CreatedAt,
	}
}

func ToResponseFiles(fsDomain domain.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}

func ToResponseData(fsDomain domain.Files, total int64, q domain.ListQuery) ResponseData {
	totalPages := total / int64(q.PageSize)
	if total%int64(q.PageSize) != 0 {
		totalPages++
	}

	return ResponseData{
		Data:       ToResponseFiles(fsDomain),
		Total:      total,
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalPages: totalPages,
	}
}

func ToUploadMeta(m UploadMetadata) domain.UploadMeta {
	return domain.UploadMeta{
		Name:         m.OriginalName,
		MimeType:     m.MimeType,
		DeclaredSize: m.SizeBytes,
		Algo:         m.ClientEncryptionAlgo,
	}
}
