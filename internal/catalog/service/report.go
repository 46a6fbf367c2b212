package service

import "mostruario-service/internal/catalog/model"

// AssembleReport shapes already-resolved data into the ordered structure the
// HTML page and the PDF layout both consume. No parsing or filtering here.
func AssembleReport(p model.Product, view model.FinishView) model.Report {
	images := make([]string, len(p.Images))
	copy(images, p.Images)

	return model.Report{
		Header: model.ReportHeader{
			Name:         p.Name,
			SupplierCode: p.SupplierKey,
			Brand:        p.Brand,
			LastUpdated:  view.LastUpdated,
		},
		Images: images,
		Groups: view.Groups,
	}
}
