/*
Package status owns every write below the build root.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Tracker |
	| (Storage) |           | (Audit) |
	+-----------+           +---------+

🎯 Purpose:
- Deletes and recreates the build root for each run
- Writes cleaned content and copies untouched files
- Records what was written (kind, size, checksum) for reporting

⚡ Key Responsibilities:
- All os.* calls that touch the build root
- Atomic writes through a temp file in the target directory
- Keeping mode and modification time on copied files when the platform allows

📝 Design Philosophy:
Operations decide what goes where; this package only knows how to put bytes
on disk. Keeping writes here lets the build operation be tested against the
FileManager interface and keeps paths relative to one root.

🔍 Example:

	mgr, err := status.New("production-build")
	if err := mgr.Reset(ctx); err != nil {
		return err
	}
	info, err := mgr.CopyFile(ctx, "icons/icon.png", "icons/icon.png")
	mgr.TrackFile(ctx, info)
*/
package status
