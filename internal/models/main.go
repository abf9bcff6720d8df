package models

// ModelRegistry lists every model AutoMigrate should manage. Keep in sync
// with the SQL migrations under migrations/.
var ModelRegistry = []interface{}{
	&DraftApplication{},
	&Application{},
	&CheckIn{},
	&EmailContact{},
}
