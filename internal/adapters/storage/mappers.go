package storage

import (
	"ramal/internal/domain"
)

func operationModelToDomain(m OperationModel) domain.OperationRecord {
	return domain.OperationRecord{
		ID:           m.ID,
		Kind:         domain.OperationKind(m.Kind),
		Branch:       m.Branch,
		WorktreePath: m.WorktreePath,
		RepoRoot:     m.RepoRoot,
		Outcome:      domain.OperationOutcome(m.Outcome),
		Detail:       m.Detail,
		OccurredAt:   m.OccurredAt,
	}
}

func domainToOperationModel(r domain.OperationRecord) OperationModel {
	return OperationModel{
		ID:           r.ID,
		Kind:         string(r.Kind),
		Branch:       r.Branch,
		WorktreePath: r.WorktreePath,
		RepoRoot:     r.RepoRoot,
		Outcome:      string(r.Outcome),
		Detail:       r.Detail,
		OccurredAt:   r.OccurredAt,
	}
}
