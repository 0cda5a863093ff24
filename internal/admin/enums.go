package admin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var ErrUnknownTransferType = errors.New("unknown transfer type")

type TransferType string

const (
	TransferTypeUnspecified TransferType = "TRANSFER_TYPE_UNSPECIFIED"
	TransferTypeStandard    TransferType = "TRANSFER_TYPE_STANDARD"
	TransferTypeZipFile     TransferType = "TRANSFER_TYPE_ZIP_FILE"
	TransferTypeUnzippedBag TransferType = "TRANSFER_TYPE_UNZIPPED_BAG"
	TransferTypeZippedBag   TransferType = "TRANSFER_TYPE_ZIPPED_BAG"
	TransferTypeDspace      TransferType = "TRANSFER_TYPE_DSPACE"
	TransferTypeMaildir     TransferType = "TRANSFER_TYPE_MAILDIR"
	TransferTypeDataverse   TransferType = "TRANSFER_TYPE_DATAVERSE"
)

var transferTypes = []TransferType{ //nolint:gochecknoglobals
	TransferTypeStandard,
	TransferTypeZipFile,
	TransferTypeUnzippedBag,
	TransferTypeZippedBag,
	TransferTypeDspace,
	TransferTypeMaildir,
	TransferTypeDataverse,
}

// ShortNames returns the accepted short transfer type names, eg "zip-file".
func ShortNames() []string {
	return lo.Map(transferTypes, func(t TransferType, _ int) string {
		return t.ShortName()
	})
}

func (t TransferType) ShortName() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(string(t), "TRANSFER_TYPE_")), "_", "-")
}

// ParseTransferType accepts both the short name and the full enum name.
func ParseTransferType(value string) (TransferType, error) {
	found, ok := lo.Find(transferTypes, func(t TransferType) bool {
		return t.ShortName() == value || string(t) == value
	})
	if !ok {
		return TransferTypeUnspecified, fmt.Errorf("%w: %s, allowed values are %v", ErrUnknownTransferType, value, ShortNames())
	}

	return found, nil
}

type PackageStatus string

const (
	PackageStatusUnspecified           PackageStatus = "PACKAGE_STATUS_UNSPECIFIED"
	PackageStatusFailed                PackageStatus = "PACKAGE_STATUS_FAILED"
	PackageStatusRejected              PackageStatus = "PACKAGE_STATUS_REJECTED"
	PackageStatusUserInput             PackageStatus = "PACKAGE_STATUS_USER_INPUT"
	PackageStatusProcessing            PackageStatus = "PACKAGE_STATUS_PROCESSING"
	PackageStatusDone                  PackageStatus = "PACKAGE_STATUS_DONE"
	PackageStatusCompletedSuccessfully PackageStatus = "PACKAGE_STATUS_COMPLETED_SUCCESSFULLY"
)

// Finished reports whether no more work will happen on the package.
func (s PackageStatus) Finished() bool {
	switch s { //nolint:exhaustive
	case PackageStatusDone, PackageStatusCompletedSuccessfully, PackageStatusFailed, PackageStatusRejected:
		return true
	}

	return false
}
