// Package binder turns HTTP requests into validation records.
//
//	record, err := binder.Record(r, binder.WithStager(binder.TempStager(uploadsDir)))
//	if err != nil {
//		http.Error(w, err.Error(), http.StatusBadRequest)
//		return
//	}
//	out := v.ValidateContext(r.Context(), record)
//
// Uploaded files are copied by a Stager and described by file.Descriptor,
// so upload, extension and size rules apply to them directly.
package binder
