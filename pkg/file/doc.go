// Package file describes uploaded files the way the rule engine sees them and
// answers the one storage question upload rules need: does the backing file
// exist?
//
// The upload transport (multipart parsing, temp-file staging) lives outside
// this module. Whatever performs it hands the engine a normalized Descriptor:
// the client file name, its size in bytes, a transport error code and the
// path of the staged copy.
//
// # Architecture
//
// Descriptor is a plain value type. FromMap and FromFileHeader convert the two
// shapes callers usually have at hand (decoded JSON/form maps and
// *multipart.FileHeader) into a Descriptor.
//
// Existence checks go through the Checker interface. Three implementations are
// provided:
//   - OSChecker: stats an absolute path on the local file system
//   - LocalStorage: stats paths confined to a base directory (path traversal safe)
//   - S3Storage: issues a HeadObject request against a bucket
//
// # Usage
//
//	d := file.Descriptor{Name: "cv.pdf", Size: 48213, TmpPath: "/tmp/upload-1"}
//	if d.Error != file.UploadOK {
//		// transport failed, see UploadErrorKey(d.Error)
//	}
//	ok := file.OSChecker{}.Exists(ctx, d.TmpPath)
//
// Uploads staged in S3:
//
//	storage, err := file.NewS3Storage(ctx, file.S3Config{
//		Bucket: "uploads",
//		Region: "eu-west-1",
//	})
//	if err != nil {
//		return err
//	}
//	ok := storage.Exists(ctx, d.TmpPath)
//
// FormatSize renders byte counts for humans ("1.5 MB") and is used by the
// size rules when they build messages.
package file
