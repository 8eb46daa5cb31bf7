package enum

// DeletionPolicy states how an entity leaves the system. Soft-deleted rows keep
// their record with a deleted_at marker and drop out of default queries;
// hard-deleted rows are removed outright and cannot be retrieved afterwards.
type DeletionPolicy string

const (
	DeletionPolicySoft DeletionPolicy = "soft"
	DeletionPolicyHard DeletionPolicy = "hard"
)

func (p DeletionPolicy) String() string {
	return string(p)
}
