// Package errors provides the structured error handling used across skirmish.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for constructor checks
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("battle not found")
//	err := errors.InvalidArgumentf("damage must be a positive multiple of 7, got %d", damage)
//
// Adding metadata:
//
//	err := errors.IllegalRelationship("no free anchor accepts the item").
//	    WithMeta("item_id", item.Identifier()).
//	    WithMeta("entity", entity.Name())
//
// Wrapping errors:
//
//	if err := item.SetOwner(looter); err != nil {
//	    return errors.Wrap(err, "failed to claim loot")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsIllegalRelationship(err) {
//	    // the graph was left untouched; the item shatters instead
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder at construction time:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("Name", cfg.Name, vb)
//	errors.ValidateRange("Contents", cfg.Contents, 0, cfg.Capacity, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// # Error Codes
//
// The following error codes are available:
//   - InvalidArgument: out-of-range weight/value/damage/protection at construction
//   - InvalidIdentifier: identifier fails its category's structural predicate
//   - DuplicateIdentifier: identifier already issued for its category
//   - IllegalRelationship: SetOwner/SetContainer/anchor placement rejected;
//     the ownership graph is guaranteed unchanged when this is returned
//   - NullTarget: combat operation invoked with a missing participant
//   - FailedPrecondition: operation on a destroyed item or resolved battle
//   - NotFound: lookup miss (reports, contents)
//   - Internal: unexpected failure (e.g. the random source)
//
// Violations of internal calling conventions (the "back-reference first"
// contract between Equipment and Backpack) are programming errors and panic
// rather than returning an error.
package errors
