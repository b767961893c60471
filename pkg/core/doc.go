// Package core implements the build pipeline for packup. It wires
// scanning, classification, staging, and archive writing into the two
// top-level operations, Deploy and Bundle.
//
// # Deploy Pipeline
//
// Deploy builds a filtered snapshot of a project tree:
//
//  1. Walk the tree and classify every regular file against the
//     exclusion rules. Nothing is pruned during the walk, so skip
//     counts cover the whole tree.
//
//  2. Copy the included files into a fresh staging area, preserving
//     their relative layout and permission bits.
//
//  3. Write the staged tree into a zip archive. The children of the
//     staging root become the top-level archive entries; the archive
//     never contains the root directory itself.
//
//  4. Destroy the staging area.
//
// The staging area is destroyed on every exit path, success or failure,
// so repeated runs never accumulate staging directories. If the
// destination archive lives inside the tree being walked it is skipped
// during classification, which keeps a re-run from packaging the
// previous run's archive into the next one.
//
// # Bundle Pipeline
//
// Bundle packages an explicit list of files flat at the archive root,
// with no staging and no classification. Every input is verified to
// exist before the destination is touched: a missing input fails the
// run and leaves any pre-existing destination archive intact.
package core
