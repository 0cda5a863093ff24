package admin

type Package struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      TransferType  `json:"type,omitempty"`
	Status    PackageStatus `json:"status,omitempty"`
	Directory string        `json:"directory,omitempty"`
}

type Choice struct {
	ID    int32  `json:"id"`
	Label string `json:"label"`
}

type Decision struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Choice      []Choice `json:"choice,omitempty"`
	PackageID   string   `json:"packageId,omitempty"`
	PackagePath string   `json:"packagePath,omitempty"`
	PackageType string   `json:"packageType,omitempty"`
	JobID       string   `json:"jobId,omitempty"`
}

type CreatePackageRequest struct {
	Name             string       `json:"name"`
	Type             TransferType `json:"type,omitempty"`
	Accession        string       `json:"accession,omitempty"`
	AccessSystemID   string       `json:"accessSystemId,omitempty"`
	Path             []string     `json:"path"`
	MetadataSetID    string       `json:"metadataSetId,omitempty"`
	ProcessingConfig string       `json:"processingConfig,omitempty"`
	AutoApprove      *bool        `json:"autoApprove,omitempty"`
}

type CreatePackageResponse struct {
	ID string `json:"id"`
}

type ReadPackageRequest struct {
	ID string `json:"id"`
}

type ReadPackageResponse struct {
	Pkg *Package `json:"pkg"`
}

type ListActivePackagesRequest struct{}

type ListActivePackagesResponse struct {
	Value []string `json:"value"`
}

type ListAwaitingDecisionsRequest struct{}

type ListAwaitingDecisionsResponse struct {
	Value []Decision `json:"value"`
}

type ResolveAwaitingDecisionRequest struct {
	ID       string `json:"id"`
	ChoiceID int32  `json:"choiceId"`
}

type ResolveAwaitingDecisionResponse struct{}

type ApproveTransferRequest struct {
	Type      TransferType `json:"type,omitempty"`
	Directory string       `json:"directory"`
}

type ApproveTransferResponse struct {
	ID string `json:"id"`
}

// ApproveJobRequest and the two requests below back the legacy dashboard endpoints.
type ApproveJobRequest struct {
	JobID  string `json:"jobId"`
	Choice string `json:"choice"`
}

type ApproveJobResponse struct{}

type ApproveTransferByPathRequest struct {
	Directory string       `json:"directory"`
	Type      TransferType `json:"type,omitempty"`
}

type ApproveTransferByPathResponse struct {
	ID string `json:"id"`
}

type ApprovePartialReingestRequest struct {
	ID string `json:"id"`
}

type ApprovePartialReingestResponse struct{}
