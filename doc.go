// SPDX-License-Identifier: Unlicense OR MIT

/*
Package androidenv gives Go code access to the current Android activity and a
JNI environment, regardless of which UI toolkit manages them.

# Usage

Platform feature packages call [WithActivity] whenever they need to make a
call into Java:

	n, ok := androidenv.WithActivity(func(env *androidenv.Env, activity *androidenv.Object) int {
		// Call into Java through env and activity.
		...
	})
	if !ok {
		// Nothing registered yet, or no JNIEnv could be obtained.
	}

The handles passed to the function are valid only for the duration of the
call. They must not be retained; once the function returns they read as null.

# Toolkits

The source of the activity and the JavaVM is chosen at build time:

  - By default, the application (or its toolkit) registers a getter with
    [SetActivityGetter] and, if the getter cannot supply a JNIEnv, the
    JavaVM with [SetVM].
  - With the androidenv_ndkcontext build tag, the (VM, context) pair is read
    from the shared store in package androidctx, which the toolkit
    initializes.
  - With the androidenv_gio build tag, the JavaVM and context are read from
    gioui.org/app.

Programs that wire things explicitly can build a [Resolver] from a [Config]
holding any [Backend].
*/
package androidenv
