package ledger

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &RegisterAccountMsg{}, migration.NoModification)
	migration.MustRegister(1, &AckTransferMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*RegisterAccountMsg)(nil)

// Path returns the routing path for this message.
func (RegisterAccountMsg) Path() string {
	return "ledger/register_account"
}

func (msg *RegisterAccountMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Account", msg.Account.Validate())
	return errs
}

var _ weave.Msg = (*AckTransferMsg)(nil)

// Path returns the routing path for this message.
func (AckTransferMsg) Path() string {
	return "ledger/ack_transfer"
}

func (msg *AckTransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.TransferID) == 0 {
		errs = errors.AppendField(errs, "TransferID", errors.Wrap(errors.ErrEmpty, "transfer id is required"))
	}
	if len(msg.Memo) > maxMemoSize {
		errs = errors.AppendField(errs, "Memo", errors.Wrapf(errors.ErrInput, "longer than %d characters", maxMemoSize))
	}
	return errs
}

const maxMemoSize = 128

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

// Path returns the routing path for this message.
func (UpdateConfigurationMsg) Path() string {
	return "ledger/update_configuration"
}

func (msg *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.Wrap(errors.ErrEmpty, "patch is required"))
	}
	return errs
}
