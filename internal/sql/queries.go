package sql

import (
	"embed"
)

//go:embed migrations
var Migrations embed.FS

//go:embed queries/register_source_file.sql
var RegisterSourceFile string

//go:embed queries/lookup_source_file.sql
var LookupSourceFile string

//go:embed queries/update_file_status.sql
var UpdateFileStatus string

//go:embed queries/publish_batch.sql
var PublishBatch string

//go:embed queries/delete_staging_batch.sql
var DeleteStagingBatch string

//go:embed queries/analyze_reimbursements.sql
var AnalyzeReimbursements string
