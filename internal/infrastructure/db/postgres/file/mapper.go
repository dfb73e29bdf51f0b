package file

import (
	domain "blindstore-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:      model.ID,
		OwnerID: model.OwnerID,

		Name:      model.Name,
		MimeType:  model.MimeType,
		SizeBytes: model.SizeBytes,

		CreatedAt: model.CreatedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
